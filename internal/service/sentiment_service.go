package service

import (
	"context"
	"strings"
	"time"

	"github.com/ntloc/EduPulse/config"
	"github.com/ntloc/EduPulse/internal/model"
	"github.com/rs/zerolog/log"
)

// SentimentService classifies feedback text. It is total: whatever the
// backend does, the result is always one of the three canonical labels.
type SentimentService interface {
	Classify(ctx context.Context, text string) string
}

type sentimentService struct {
	backend SentimentBackend
	timeout time.Duration
}

func NewSentimentService(cfg *config.Config) SentimentService {
	var backend SentimentBackend
	if cfg.Sentiment.ScriptPath != "" {
		backend = NewScriptSentimentBackend(cfg.Sentiment.PythonBin, cfg.Sentiment.ScriptPath)
		log.Info().Str("script", cfg.Sentiment.ScriptPath).Msg("Sentiment classification using model script backend")
	} else {
		backend = NewLexiconSentimentBackend()
		log.Info().Msg("SENTIMENT_SCRIPT is not set. Sentiment classification using in-process lexicon backend")
	}

	timeout := time.Duration(cfg.Sentiment.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &sentimentService{backend: backend, timeout: timeout}
}

// Classify runs the backend with a bounded wait and canonicalizes its output.
// Backend errors and non-enumerated labels degrade to "neutral"; they are
// logged, never surfaced to the caller.
func (s *sentimentService) Classify(ctx context.Context, text string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	label, err := s.backend.Classify(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("Sentiment backend failed, defaulting to neutral")
		return model.SentimentNeutral
	}

	switch strings.ToLower(strings.TrimSpace(label)) {
	case model.SentimentPositive:
		return model.SentimentPositive
	case model.SentimentNegative:
		return model.SentimentNegative
	case model.SentimentNeutral:
		return model.SentimentNeutral
	default:
		log.Warn().Str("label", label).Msg("Sentiment backend returned unknown label, defaulting to neutral")
		return model.SentimentNeutral
	}
}
