package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"prosecoach/internal/document"
	"prosecoach/internal/feedback"
)

func TestAnalyzeDocuments(t *testing.T) {
	docs := []Document{
		{Name: "a", Text: "a"},
		{Name: "b", Text: "b"},
		{Name: "c", Text: "c"},
	}

	var called int32
	out := AnalyzeDocuments(context.Background(), docs, 2, func(_ context.Context, doc Document) (*document.Result, error) {
		atomic.AddInt32(&called, 1)
		if doc.Name == "b" {
			return nil, errors.New("test error")
		}
		return &document.Result{HTML: doc.Text}, nil
	})

	if called != int32(len(docs)) {
		t.Fatalf("expected %d calls, got %d", len(docs), called)
	}
	if len(out) != len(docs) {
		t.Fatalf("expected %d outcomes, got %d", len(docs), len(out))
	}
	for i, o := range out {
		if o.Document.Name != docs[i].Name {
			t.Fatalf("outcome %d out of order: %s", i, o.Document.Name)
		}
	}
	if out[1].Err == nil || out[0].Err != nil || out[2].Err != nil {
		t.Fatalf("expected only the second document to fail: %+v", out)
	}
}

func TestAnalyzeDocumentsKeepsCountersSeparate(t *testing.T) {
	a := document.New(document.WithSettings(feedback.DefaultSettings()))
	docs := []Document{
		{Name: "one", Text: "We utilize tools."},
		{Name: "two", Text: "The cat sat."},
		{Name: "three", Text: "We utilize tools. We utilize more."},
	}

	out := AnalyzeDocuments(context.Background(), docs, 3, Analyze(a))
	want := []int{1, 0, 2}
	for i, o := range out {
		if o.Err != nil {
			t.Fatalf("document %s: %v", o.Document.Name, o.Err)
		}
		if got := o.Result.Counters.Complex; got != want[i] {
			t.Fatalf("document %s: expected %d complex, got %d", o.Document.Name, want[i], got)
		}
	}
}

func TestAnalyzeDocumentsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := AnalyzeDocuments(ctx, []Document{{Name: "x", Text: "Hello."}}, 1, Analyze(document.New()))
	if len(out) != 1 || !errors.Is(out[0].Err, context.Canceled) {
		t.Fatalf("expected cancellation error, got %+v", out)
	}
}
