package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hireloop/ats-analyzer/internal/analyzer"
	"github.com/hireloop/ats-analyzer/internal/extract"
	"github.com/hireloop/ats-analyzer/internal/logger"
	"github.com/hireloop/ats-analyzer/internal/prompts"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	promptReview   = "Review"
	promptOptimize = "Optimize"
	promptScore    = "ATS Score"
	promptFit      = "Job Fit Score"
	promptKeywords = "Keyword Coverage"
	promptDesign   = "Design Suggestions"
	promptLanguage = "Translate"
	promptQuit     = "Quit"
)

var actionModes = map[string]prompts.Mode{
	promptReview:   prompts.ModeReview,
	promptOptimize: prompts.ModeOptimize,
	promptScore:    prompts.ModeScore,
	promptFit:      prompts.ModeFit,
	promptDesign:   prompts.ModeDesign,
}

var actionPrompt = promptui.Select{
	Label: "Choose an analysis",
	Items: []string{
		promptReview, promptOptimize, promptScore, promptFit,
		promptKeywords, promptDesign, promptLanguage, promptQuit,
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume PDF from the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "path to the resume PDF")
	analyzeCmd.Flags().String("job-desc", "", "path to a text file with the job description")

	_ = analyzeCmd.MarkFlagRequired("resume")
}

func analyze(cmd *cobra.Command) {
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

	resumeText, err := extractResumeFile(cmd.Flag("resume").Value.String())
	if err != nil {
		lg.Fatal("extracting resume text",
			zap.Error(err),
			zap.String("hint", "the file must be a PDF with embedded text, not a scanned image"),
		)
	}

	jobDescription := ""
	if path := cmd.Flag("job-desc").Value.String(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			lg.Fatal("reading job description", zap.Error(err))
		}
		jobDescription = string(data)
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			lg.Fatal("exiting", zap.Error(err))
		}

		if action == promptQuit {
			return
		}

		if action == promptKeywords {
			printCoverage(analyzer.Analyze(jobDescription, resumeText))
			continue
		}

		req, err := buildRequest(action, jobDescription, resumeText)
		if err != nil {
			lg.Fatal("building request", zap.Error(err))
		}

		result, err := gateway.Run(ctx, req)
		if err != nil {
			lg.Error("analysis failed", zap.String("action", action), zap.Error(err))
			continue
		}

		fmt.Printf("\n%s\n\n", result)
	}
}

func buildRequest(action, jobDescription, resumeText string) (prompts.Request, error) {
	if action == promptLanguage {
		language, err := selectLanguage()
		if err != nil {
			return nil, err
		}
		return prompts.Translate{ResumeText: resumeText, Language: language}, nil
	}

	mode, ok := actionModes[action]
	if !ok {
		return nil, fmt.Errorf("invalid action: %s", action)
	}

	return prompts.New(mode, jobDescription, resumeText, "")
}

func selectLanguage() (prompts.Language, error) {
	items := make([]string, 0, len(prompts.Languages()))
	for _, lang := range prompts.Languages() {
		items = append(items, string(lang))
	}

	languagePrompt := promptui.Select{
		Label: "Translate resume to",
		Items: items,
	}

	_, selected, err := languagePrompt.Run()
	if err != nil {
		return "", err
	}

	return prompts.ParseLanguage(selected)
}

func extractResumeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extract.New().Text(bytes.NewReader(data), int64(len(data)))
}

func printCoverage(coverage *analyzer.Coverage) {
	fmt.Printf("\nKeyword coverage: %.1f%%\n", coverage.Percent)
	fmt.Printf("Matched keywords: %s\n", joinOrNone(coverage.Matched))
	fmt.Printf("Missing keywords: %s\n\n", joinOrNone(coverage.Missing))
}

func joinOrNone(words []string) string {
	if len(words) == 0 {
		return "none"
	}
	return strings.Join(words, ", ")
}
