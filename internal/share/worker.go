package share

import (
	"context"
	"sync"

	"github.com/ShayCichocki/songsmith/internal/debuglog"
)

// Result is the outcome of one Worker job. Link is set for encodes and
// Payload for decodes.
type Result struct {
	Code    string
	Link    string
	Payload Payload
	Err     error
}

// Worker runs encode and decode jobs on their own goroutines. Each call
// returns a channel that receives exactly one Result and is then closed.
type Worker struct {
	baseURL string
	log     *debuglog.Logger
	wg      sync.WaitGroup
}

// NewWorker creates a Worker that builds links against baseURL.
func NewWorker(baseURL string, log *debuglog.Logger) *Worker {
	return &Worker{baseURL: baseURL, log: log}
}

// Encode builds a share link for p.
func (w *Worker) Encode(ctx context.Context, p Payload) <-chan Result {
	return w.run(ctx, func() Result {
		code, err := Encode(p)
		if err != nil {
			return Result{Err: err}
		}
		link := linkFor(w.baseURL, code)
		w.log.Log("[share] encoded %d-byte code", len(code))
		return Result{Code: code, Link: link, Payload: p}
	})
}

// Decode parses a share link or bare code.
func (w *Worker) Decode(ctx context.Context, linkOrCode string) <-chan Result {
	return w.run(ctx, func() Result {
		code, err := ParseLink(linkOrCode)
		if err != nil {
			return Result{Err: err}
		}
		p, err := Decode(code)
		if err != nil {
			w.log.Log("[share] decode failed: %v", err)
			return Result{Code: code, Err: err}
		}
		return Result{Code: code, Payload: p}
	})
}

// Wait blocks until every submitted job has delivered its result.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context, job func() Result) <-chan Result {
	out := make(chan Result, 1)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer close(out)

		if err := ctx.Err(); err != nil {
			out <- Result{Err: err}
			return
		}
		out <- job()
	}()
	return out
}
