package workers

import (
	"context"
	"log"
)

// PerfectDayHandler reacts to a day reaching 100% completion.
type PerfectDayHandler interface {
	OnPerfectDay(ctx context.Context, date string)
}

type CompletionJob struct {
	Date string
}

// CompletionWorker moves perfect-day handling off the request path.
type CompletionWorker struct {
	handler PerfectDayHandler
	jobs    chan CompletionJob
}

func NewCompletionWorker(handler PerfectDayHandler) *CompletionWorker {
	return &CompletionWorker{
		handler: handler,
		jobs:    make(chan CompletionJob, 100),
	}
}

func (w *CompletionWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Completion Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.handler.OnPerfectDay(ctx, job.Date)
			case <-ctx.Done():
				log.Println("Completion Worker shutting down...")
				return
			}
		}
	}()
}

// OnPerfectDay enqueues the date and never blocks.
func (w *CompletionWorker) OnPerfectDay(ctx context.Context, date string) {
	select {
	case w.jobs <- CompletionJob{Date: date}:
	default:
		log.Printf("Completion Worker queue full! Dropping job for %s", date)
	}
}
