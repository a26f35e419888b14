package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultActor stamps audit entries when neither the request nor the
// service configuration names one.
const DefaultActor = "system"

type options struct {
	newID    func() string
	now      func() time.Time
	logger   *slog.Logger
	observer UseCaseObserver
	actor    string
}

// Option configures a service.
type Option func(*options)

// WithIDGenerator replaces the uuid generator for new entity IDs.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObservers reports use cases to every non-nil observer given.
func WithObservers(observers ...UseCaseObserver) Option {
	return func(o *options) { o.observer = combineObservers(observers) }
}

// WithDefaultActor sets the actor used when a request carries none.
func WithDefaultActor(actor string) Option {
	return func(o *options) {
		if actor != "" {
			o.actor = actor
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
		logger:   slog.Default(),
		observer: NoopUseCaseObserver{},
		actor:    DefaultActor,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) clock() time.Time {
	return o.now().UTC()
}

func (o options) actorOr(actor string) string {
	if actor != "" {
		return actor
	}
	return o.actor
}
