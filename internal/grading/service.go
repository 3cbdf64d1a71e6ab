package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rlemos/provinha/internal/llm"
)

// Config holds grading generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for grading.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.3,
	}
}

// Service is the LLM-backed Grader.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a grading service on top of an LLM provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

var _ Grader = (*Service)(nil)

type resultOutput struct {
	Adherence    string   `json:"adherence"`
	Positives    []string `json:"positives"`
	Improvements []string `json:"improvements"`
	ModelAnswer  string   `json:"model_answer"`
}

// Grade evaluates one submission. Transport, auth and schema failures
// come back as errors with the session state untouched; the learner may
// simply resubmit.
func (s *Service) Grade(ctx context.Context, sub Submission) (*Result, error) {
	if strings.TrimSpace(sub.StudentText) == "" {
		return nil, fmt.Errorf("empty student answer")
	}

	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingUserMessage(sub)},
		},
		Schema:      resultSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grade answer: %w", err)
	}

	var out resultOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grading response: %w", err)
	}

	adherence := Adherence(out.Adherence)
	if !adherence.Valid() {
		return nil, fmt.Errorf("unknown adherence %q in grading response", out.Adherence)
	}

	return &Result{
		Adherence:    adherence,
		Positives:    out.Positives,
		Improvements: out.Improvements,
		ModelAnswer:  out.ModelAnswer,
	}, nil
}
