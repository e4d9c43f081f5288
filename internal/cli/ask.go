package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ikTheProgrammer1/askbetter/internal/config"
	"github.com/ikTheProgrammer1/askbetter/internal/output"
	"github.com/ikTheProgrammer1/askbetter/internal/providers"
	"github.com/ikTheProgrammer1/askbetter/internal/review"
	"github.com/spf13/cobra"
)

// Shared ask flags
var (
	flagProvider    string
	flagModel       string
	flagFormat      string
	flagOut         string
	flagRubric      string
	flagRetryBudget int
	flagTimeout     int
	flagTemperature float64
	flagSeed        int
)

func addAskFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (anthropic, openai, gemini, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (json, text, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagRubric, "rubric", "", "Rubric file path (YAML)")
	cmd.Flags().IntVar(&flagRetryBudget, "retry-budget", 0, "Retries beyond the first generation attempt")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Generation timeout in seconds")
	cmd.Flags().Float64Var(&flagTemperature, "temperature", 0, "Sampling temperature")
	cmd.Flags().IntVar(&flagSeed, "seed", 0, "Sampling seed for providers that support it")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagRubric != "" {
		m["rubricFile"] = flagRubric
	}
	if flagRetryBudget > 0 {
		m["retryBudget"] = fmt.Sprintf("%d", flagRetryBudget)
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	if flagTemperature > 0 {
		m["temperature"] = fmt.Sprintf("%g", flagTemperature)
	}
	if flagSeed != 0 {
		m["seed"] = fmt.Sprintf("%d", flagSeed)
	}
	return m
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Review a question and emit a structured QuestionReview",
	Long:  "Review a question using an LLM provider. The question is taken from the arguments, or prompted for when absent.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			question = promptForQuestion()
		}
		if question == "" {
			fmt.Fprintln(os.Stderr, "No question provided.")
			exitCode = ExitUsageError
			return nil
		}

		runAsk(question, cfg)
		return nil
	},
}

func promptForQuestion() string {
	fmt.Fprint(os.Stderr, "Enter your question: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func runAsk(question string, cfg config.Config) {
	engine, err := review.NewEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsConfigurationError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	result, err := engine.Run(context.Background(), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) || providers.IsConfigurationError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	if err := output.WriteResult(result, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
}

func init() {
	addAskFlags(askCmd)
}
