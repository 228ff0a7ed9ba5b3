package capability

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Notification struct {
	Title string
	Body  string
	Tag   string
}

// Notifier delivers user-facing notifications when the deployment has a channel for them.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// BackgroundSync defers work registered under a tag until it can run.
type BackgroundSync interface {
	Register(ctx context.Context, tag string) error
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notification) error { return nil }

type NoopBackgroundSync struct{}

func (NoopBackgroundSync) Register(context.Context, string) error { return nil }

// LogNotifier writes notifications to the service log.
type LogNotifier struct {
	log logrus.FieldLogger
}

func (n *LogNotifier) Notify(_ context.Context, msg Notification) error {
	n.log.WithFields(logrus.Fields{"tag": msg.Tag, "body": msg.Body}).Info(msg.Title)
	return nil
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogNotifier{log: log}
}

// Set is the collection of optional capabilities chosen at startup.
type Set struct {
	Notifier       Notifier
	BackgroundSync BackgroundSync
}

// WithDefaults fills absent capabilities with no-op implementations.
func (s Set) WithDefaults() Set {
	if s.Notifier == nil {
		s.Notifier = NoopNotifier{}
	}
	if s.BackgroundSync == nil {
		s.BackgroundSync = NoopBackgroundSync{}
	}
	return s
}

// NewNotifier maps a configured kind ("log", "none") to an implementation; unknown kinds get the no-op.
func NewNotifier(kind string) Notifier {
	switch kind {
	case "log":
		return NewLogNotifier(logrus.WithField("component", "notifier"))
	default:
		return NoopNotifier{}
	}
}
