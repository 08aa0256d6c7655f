package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ntloc/EduPulse/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakeSentimentBackend struct {
	classifyFunc func(ctx context.Context, text string) (string, error)
	calls        int
}

func (f *fakeSentimentBackend) Classify(ctx context.Context, text string) (string, error) {
	f.calls++
	return f.classifyFunc(ctx, text)
}

func newSentimentServiceForTest(backend SentimentBackend) *sentimentService {
	return &sentimentService{backend: backend, timeout: time.Second}
}

func TestSentimentClassifyCanonicalizesLabels(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"uppercase", "POSITIVE", model.SentimentPositive},
		{"mixed case with whitespace", "  Negative \n", model.SentimentNegative},
		{"plain neutral", "neutral", model.SentimentNeutral},
		{"unknown label falls back to neutral", "somewhat ok", model.SentimentNeutral},
		{"empty label falls back to neutral", "", model.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeSentimentBackend{
				classifyFunc: func(context.Context, string) (string, error) { return tt.label, nil },
			}
			svc := newSentimentServiceForTest(backend)

			assert.Equal(t, tt.want, svc.Classify(context.Background(), "some feedback"))
			assert.Equal(t, 1, backend.calls)
		})
	}
}

func TestSentimentClassifyBackendErrorDefaultsToNeutral(t *testing.T) {
	backend := &fakeSentimentBackend{
		classifyFunc: func(context.Context, string) (string, error) {
			return "", errors.New("model process crashed")
		},
	}
	svc := newSentimentServiceForTest(backend)

	assert.Equal(t, model.SentimentNeutral, svc.Classify(context.Background(), "anything"))
}

func TestSentimentClassifyScriptBackendUnavailable(t *testing.T) {
	// A missing interpreter behaves like an unreachable backend: the service
	// absorbs the error and returns neutral.
	backend := NewScriptSentimentBackend("definitely-not-a-real-binary", "/nonexistent/predict.py")
	svc := newSentimentServiceForTest(backend)

	assert.Equal(t, model.SentimentNeutral, svc.Classify(context.Background(), "great teacher"))
}

func TestLexiconBackend(t *testing.T) {
	backend := NewLexiconSentimentBackend()
	ctx := context.Background()

	t.Run("positive text", func(t *testing.T) {
		label, err := backend.Classify(ctx, "Great and engaging lessons, very clear explanations.")
		assert.NoError(t, err)
		assert.Equal(t, "positive", label)
	})

	t.Run("negative text", func(t *testing.T) {
		label, err := backend.Classify(ctx, "Boring lectures and confusing, poorly organized.")
		assert.NoError(t, err)
		assert.Equal(t, "negative", label)
	})

	t.Run("neutral text", func(t *testing.T) {
		label, err := backend.Classify(ctx, "The syllabus covers algebra and statistics.")
		assert.NoError(t, err)
		assert.Equal(t, "neutral", label)
	})

	t.Run("empty text", func(t *testing.T) {
		label, err := backend.Classify(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, "neutral", label)
	})

	t.Run("balanced text is neutral", func(t *testing.T) {
		label, err := backend.Classify(ctx, "Great content but boring delivery.")
		assert.NoError(t, err)
		assert.Equal(t, "neutral", label)
	})
}
