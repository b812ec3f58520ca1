package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"prosecoach/internal/document"
)

type Document struct {
	Name string
	Text string
}

type Analyzer func(ctx context.Context, doc Document) (*document.Result, error)

type Outcome struct {
	Document Document
	Result   *document.Result
	Err      error
}

// AnalyzeDocuments runs fn over docs with at most workers in flight. Outcomes
// come back in input order; a failing document does not stop the others.
func AnalyzeDocuments(ctx context.Context, docs []Document, workers int, fn Analyzer) []Outcome {
	if len(docs) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	out := make([]Outcome, len(docs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, doc := range docs {
		g.Go(func() error {
			out[i].Document = doc
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Result, out[i].Err = fn(ctx, doc)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Analyze adapts a document analyzer for AnalyzeDocuments.
func Analyze(a *document.Analyzer) Analyzer {
	return func(ctx context.Context, doc Document) (*document.Result, error) {
		return a.Analyze(ctx, doc.Text)
	}
}
