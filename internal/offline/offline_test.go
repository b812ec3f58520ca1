package offline

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"prosecoach/internal/document"
	"prosecoach/internal/feedback"
	"prosecoach/internal/ingest"
	"prosecoach/internal/modes"
)

type failTransport struct{}

func (f failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled for offline test")
}

func TestOfflineMode(t *testing.T) {
	original := http.DefaultTransport
	http.DefaultTransport = failTransport{}
	t.Cleanup(func() { http.DefaultTransport = original })

	page := `<html><body><article><p>` + strings.Repeat("This is a sentence that was written quickly. ", 50) + `</p></article></body></html>`
	parsed, err := ingest.Parse("page.html", []byte(page))
	if err != nil {
		t.Fatalf("expected html ingest to work offline: %v", err)
	}

	a := document.New(
		document.WithSettings(feedback.Settings{PassiveVariant: feedback.PassiveEnhanced, Mode: feedback.ModeMarketing}),
		document.WithLanguageDetection(),
	)
	res, err := a.Analyze(context.Background(), parsed.Text)
	if err != nil {
		t.Fatalf("expected analysis to work offline: %v", err)
	}
	if res.Counters.PassiveVoice != 50 || res.Counters.Adverbs != 50 {
		t.Fatalf("unexpected counters offline: %+v", res.Counters)
	}
	if res.Language == nil || !res.Language.English {
		t.Fatalf("expected English detection offline, got %+v", res.Language)
	}

	if s, ok := modes.Report(feedback.ModeConversational, parsed.Text); !ok || len(s.Recommendations) == 0 {
		t.Fatal("expected mode metrics to work offline")
	}
}
