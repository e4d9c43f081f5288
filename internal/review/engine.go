package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/ikTheProgrammer1/askbetter/internal/config"
	"github.com/ikTheProgrammer1/askbetter/internal/piiscan"
	"github.com/ikTheProgrammer1/askbetter/internal/providers"
)

// maxToolRounds bounds the number of tool-invocation round trips within a
// single generation attempt.
const maxToolRounds = 4

const generateMaxTokens = 2048

// Result carries the finalized review plus per-request stats.
type Result struct {
	Review     *QuestionReview
	Attempts   int
	TokensUsed int
	LLMMs      int64
}

// Engine drives the review pipeline for one request at a time:
// scan -> generate -> validate -> merge, with bounded retry on generation
// and validation failures. Engines hold only immutable configuration, so
// independent requests can run on independent engines without locking.
type Engine struct {
	cfg    config.Config
	gen    providers.Generator
	rubric *Rubric
}

// NewEngine creates an engine using the configured provider. A missing
// credential surfaces here, before any request is processed.
func NewEngine(cfg config.Config) (*Engine, error) {
	gen, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		return nil, err
	}
	return NewEngineWithGenerator(cfg, gen)
}

// NewEngineWithGenerator creates an engine around an explicit generator.
// Tests use it to substitute fake providers.
func NewEngineWithGenerator(cfg config.Config, gen providers.Generator) (*Engine, error) {
	rubric, err := LoadRubric(cfg.RubricFile)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, gen: gen, rubric: rubric}, nil
}

// Run executes the full pipeline for one question and returns the finalized
// record. On exhausted retries or a fatal error it returns the last error;
// it never returns a partially valid record.
func (e *Engine) Run(ctx context.Context, question string) (*Result, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is empty")
	}
	if e.cfg.MaxQuestionBytes > 0 && len(question) > e.cfg.MaxQuestionBytes {
		return nil, fmt.Errorf("question exceeds maximum size of %d bytes", e.cfg.MaxQuestionBytes)
	}

	fsm, err := newPipelineFSM()
	if err != nil {
		return nil, err
	}

	// The scan result is retained regardless of later outcomes: the final
	// flag set is always a superset of it, and generation never weakens it.
	if err := fsm.Transition(EventScan); err != nil {
		return nil, err
	}
	localFlags := piiscan.Scan(question)

	if err := fsm.Transition(EventGenerate); err != nil {
		return nil, err
	}

	tools := []providers.Tool{{
		Name:        piiscan.ToolName,
		Description: piiscan.ToolDescription,
		Parameters:  piiscan.ToolParameters(),
	}}

	timeoutDur := 120 * time.Second
	if e.cfg.TimeoutSeconds > 0 {
		timeoutDur = time.Duration(e.cfg.TimeoutSeconds) * time.Second
	}
	guard := timeout.New[providers.GenerateResponse](timeout.Config{
		DefaultTimeout: timeoutDur,
	})
	// The provider exchange is the pipeline's only suspension point; the
	// timeout guard cancels it rather than any local work.
	generate := func(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, error) {
		return guard.Execute(ctx, timeoutDur, func(ctx context.Context) (providers.GenerateResponse, error) {
			return e.gen.Generate(ctx, req)
		})
	}

	result := &Result{}
	maxAttempts := e.cfg.RetryBudget + 1
	var feedback []string
	var lastErr error

	llmStart := time.Now()
	defer func() { result.LLMMs = time.Since(llmStart).Milliseconds() }()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := fsm.Transition(EventRetry); err != nil {
				return nil, err
			}
		}
		result.Attempts = attempt

		cand, err := e.generateCandidate(ctx, question, tools, feedback, generate, result)
		if err != nil {
			var toolErr *ToolError
			if errors.As(err, &toolErr) || providers.IsAuthError(err) || ctx.Err() != nil {
				// Fatal: no partial merge, no retry. A rejected credential
				// will not become valid on a second attempt.
				if ferr := fsm.Transition(EventFail); ferr != nil {
					return nil, ferr
				}
				return nil, err
			}
			feedback = append(feedback, err.Error())
			lastErr = err
			continue
		}

		if err := fsm.Transition(EventCandidate); err != nil {
			return nil, err
		}

		review, err := validateCandidate(cand, question)
		if err != nil {
			feedback = append(feedback, err.Error())
			lastErr = err
			continue
		}

		if err := fsm.Transition(EventValid); err != nil {
			return nil, err
		}
		review.Flags = MergeFlags(review.Flags, localFlags)

		if err := fsm.Transition(EventFinalize); err != nil {
			return nil, err
		}
		result.Review = review
		return result, nil
	}

	if err := fsm.Transition(EventFail); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("review failed after %d attempts: %w", maxAttempts, lastErr)
}

// generateCandidate runs one generation attempt: a conversation loop in
// which the provider either returns a final candidate or requests tool
// invocations. Tool calls are dispatched synchronously to the scanner and
// their results resubmitted before the attempt completes.
func (e *Engine) generateCandidate(
	ctx context.Context,
	question string,
	tools []providers.Tool,
	feedback []string,
	generate func(context.Context, providers.GenerateRequest) (providers.GenerateResponse, error),
	result *Result,
) (*candidate, error) {
	temp := e.cfg.Temperature
	req := providers.GenerateRequest{
		System:      SystemPrompt(),
		Tools:       tools,
		MaxTokens:   generateMaxTokens,
		Temperature: &temp,
	}
	if e.cfg.Seed != 0 {
		seed := e.cfg.Seed
		req.Seed = &seed
	}
	req.Messages = []providers.Message{{
		Role:    providers.RoleUser,
		Content: BuildUserPrompt(question, e.rubric, feedback),
	}}

	for round := 0; round <= maxToolRounds; round++ {
		resp, err := generate(ctx, req)
		if err != nil {
			return nil, &GenerationError{Err: err}
		}
		result.TokensUsed += resp.TokensUsed

		msg := resp.Message
		if len(msg.ToolCalls) == 0 {
			cand, err := parseCandidate(msg.Content)
			if err != nil {
				return nil, &GenerationError{Err: err}
			}
			return cand, nil
		}

		req.Messages = append(req.Messages, msg)
		for _, call := range msg.ToolCalls {
			if call.Name != piiscan.ToolName {
				return nil, &ToolError{Tool: call.Name, Err: errors.New("unknown tool")}
			}
			out, err := piiscan.ToolResult(call.Arguments)
			if err != nil {
				return nil, &ToolError{Tool: call.Name, Err: err}
			}
			req.Messages = append(req.Messages, providers.Message{
				Role:       providers.RoleTool,
				ToolCallID: call.ID,
				Content:    out,
			})
		}
	}

	return nil, &GenerationError{Err: fmt.Errorf("tool invocation limit (%d rounds) exceeded", maxToolRounds)}
}
