package service

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode"
)

// SentimentBackend is the pluggable classification capability behind
// SentimentService. Implementations return a raw label; canonicalization and
// fallback policy live in the service, not here.
type SentimentBackend interface {
	Classify(ctx context.Context, text string) (string, error)
}

// scriptSentimentBackend shells out to the trained classifier script: the
// text is passed as a single argument and the script prints only the label.
type scriptSentimentBackend struct {
	pythonBin  string
	scriptPath string
}

func NewScriptSentimentBackend(pythonBin, scriptPath string) SentimentBackend {
	return &scriptSentimentBackend{pythonBin: pythonBin, scriptPath: scriptPath}
}

func (b *scriptSentimentBackend) Classify(ctx context.Context, text string) (string, error) {
	cmd := exec.CommandContext(ctx, b.pythonBin, b.scriptPath, text)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("sentiment script %s failed: %w", b.scriptPath, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// lexiconSentimentBackend is the in-process heuristic used when no model
// script is configured. It counts polarity keywords in the text.
type lexiconSentimentBackend struct{}

func NewLexiconSentimentBackend() SentimentBackend {
	return &lexiconSentimentBackend{}
}

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"helpful": true, "clear": true, "engaging": true, "love": true,
	"loved": true, "best": true, "wonderful": true, "fantastic": true,
	"supportive": true, "awesome": true, "enjoy": true, "enjoyed": true,
	"patient": true, "inspiring": true, "friendly": true, "thorough": true,
}

var negativeWords = map[string]bool{
	"bad": true, "poor": true, "terrible": true, "boring": true,
	"confusing": true, "unclear": true, "worst": true, "hate": true,
	"awful": true, "rude": true, "unhelpful": true, "disappointing": true,
	"horrible": true, "dirty": true, "noisy": true, "useless": true,
	"frustrating": true, "disorganized": true,
}

func (b *lexiconSentimentBackend) Classify(_ context.Context, text string) (string, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	positive, negative := 0, 0
	for _, w := range words {
		if positiveWords[w] {
			positive++
		}
		if negativeWords[w] {
			negative++
		}
	}

	switch {
	case positive > negative:
		return "positive", nil
	case negative > positive:
		return "negative", nil
	default:
		return "neutral", nil
	}
}
