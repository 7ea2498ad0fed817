package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hireloop/ats-analyzer/internal/ai"
	"github.com/hireloop/ats-analyzer/internal/ai/gemini"
	"github.com/hireloop/ats-analyzer/internal/extract"
	"github.com/hireloop/ats-analyzer/internal/logger"
	"github.com/hireloop/ats-analyzer/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and JSON API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", defaultAddress, "address to listen on")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve(_ *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		lg.Fatal("getting a config", zap.Error(err))
	}

	gateway := buildGateway(ctx, config.AI, lg)

	srv := server.New(server.Config{
		Address:        config.Server.Address,
		MaxUploadBytes: config.Server.MaxUploadMB << 20,
	}, extract.New(), gateway, lg)

	lg.Info("starting the "+app,
		zap.String("version", version),
		zap.String("address", config.Server.Address),
	)

	if err := srv.Start(ctx); err != nil {
		lg.Fatal("http server failed", zap.Error(err))
	}
}

// buildGateway wires the Gemini generator behind the invocation gateway. Any
// failure here is fatal: without a credential no surface is usable.
func buildGateway(ctx context.Context, cfg *AIConfig, lg *zap.Logger) *ai.Gateway {
	apiKey, err := resolveAPIKey(cfg.Gemini)
	if err != nil {
		lg.Fatal("loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set the "+geminiAPIKeyEnv+" environment variable or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
	}

	aiLogger := logger.WithProviderFields(lg, cfg.Provider, cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, aiLogger)
	if err != nil {
		lg.Fatal("creating gemini generator", zap.Error(err))
	}

	return ai.NewGateway(generator, logger.WithProviderFields(lg, cfg.Provider, generator.Model()), cfg.Gemini.MaxLogLength)
}
