// Package notifier fans article state changes out to registered observers.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"article-workflow/internal/domain"
	"article-workflow/internal/metrics"
)

// Observer reacts to an article changing state.
type Observer interface {
	OnStateChange(ctx context.Context, article domain.Article, oldState, newState domain.State, message string) error
}

// Named is implemented by observers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// Notifier delivers state changes to observers in registration order.
type Notifier struct {
	logger    *slog.Logger
	observers []Observer
}

// New creates a Notifier with a fixed, ordered set of observers.
func New(logger *slog.Logger, observers ...Observer) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		logger:    logger,
		observers: append([]Observer(nil), observers...),
	}
}

// Subscribe appends an observer. Call it only while wiring, before Notify
// runs concurrently.
func (n *Notifier) Subscribe(o Observer) {
	n.observers = append(n.observers, o)
}

// Len returns the number of registered observers.
func (n *Notifier) Len() int {
	return len(n.observers)
}

// Notify calls every observer once, synchronously. A failing or panicking
// observer does not stop the others; all failures are returned joined, each
// as a *domain.ObserverError.
func (n *Notifier) Notify(ctx context.Context, article domain.Article, oldState, newState domain.State, message string) error {
	var errs []error
	for _, o := range n.observers {
		if err := n.deliver(ctx, o, article, oldState, newState, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) deliver(ctx context.Context, o Observer, article domain.Article, oldState, newState domain.State, message string) (err error) {
	name := observerName(o)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			err = &domain.ObserverError{Observer: name, Err: err}
			metrics.ObserveObserverFailure(name)
			n.logger.WarnContext(ctx, "Observer failed",
				slog.String("observer", name),
				slog.String("article_id", article.ID),
				slog.String("old_state", string(oldState)),
				slog.String("new_state", string(newState)),
				slog.String("error", err.Error()),
			)
		}
	}()

	return o.OnStateChange(ctx, article, oldState, newState, message)
}

func observerName(o Observer) string {
	if named, ok := o.(Named); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", o)
}
