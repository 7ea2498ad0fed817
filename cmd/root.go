package cmd

import (
	"errors"
	"log"

	"github.com/hireloop/ats-analyzer/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "ats-analyzer"

	defaultAddress      = ":8080"
	defaultMaxUploadMB  = 10
	defaultMaxRetries   = 2
	defaultMaxLogLength = 200

	geminiAPIKeyEnv = "GEMINI_API_KEY"
)

type Config struct {
	Server *ServerConfig `mapstructure:"server"`
	AI     *AIConfig     `mapstructure:"ai"`
}

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	MaxUploadMB int64  `mapstructure:"max-upload-mb"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "ats-analyzer reviews, scores and translates resume PDFs against job descriptions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless explicitly requested; everything
		// has a default or an environment fallback.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Server.Address == "" {
		config.Server.Address = defaultAddress
	}
	if config.Server.MaxUploadMB <= 0 {
		config.Server.MaxUploadMB = defaultMaxUploadMB
	}

	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Provider == "" {
		config.AI.Provider = "gemini"
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.AI.Gemini.MaxRetries <= 0 {
		config.AI.Gemini.MaxRetries = defaultMaxRetries
	}
	if config.AI.Gemini.MaxLogLength <= 0 {
		config.AI.Gemini.MaxLogLength = defaultMaxLogLength
	}

	return config, nil
}

// resolveAPIKey loads the Gemini credential. Missing credential is a startup
// failure, handled before any surface becomes usable.
func resolveAPIKey(cfg *GeminiConfig) (string, error) {
	return secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
		Env:   geminiAPIKeyEnv,
	})
}
