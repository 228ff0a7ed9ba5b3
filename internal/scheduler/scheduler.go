package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

var (
	ErrStopped   = errors.New("scheduler stopped")
	ErrNoHandler = errors.New("no handler for sync tag")
)

type Task func(ctx context.Context) error

type periodicJob struct {
	name     string
	interval time.Duration
	task     Task
}

// Scheduler runs periodic jobs and one-shot background-sync jobs registered by tag.
type Scheduler struct {
	clock clockwork.Clock

	mu       sync.Mutex
	periodic []periodicJob
	handlers map[string]Task
	pending  map[string]struct{}
	stopped  bool
	// -----
	sched gocron.Scheduler
}

// Every adds a job that runs right after Start and then every interval. Call before Start.
func (s *Scheduler) Every(name string, interval time.Duration, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periodic = append(s.periodic, periodicJob{name: name, interval: interval, task: task})
}

// Handle binds the task that runs when tag is registered.
func (s *Scheduler) Handle(tag string, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[tag] = task
}

// Register queues a one-shot run of the handler for tag. A tag that is already queued
// and has not started yet is not queued twice. Tags registered before Start run once
// the scheduler starts.
func (s *Scheduler) Register(_ context.Context, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	task, ok := s.handlers[tag]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, tag)
	}
	if _, queued := s.pending[tag]; queued {
		return nil
	}
	if s.sched != nil {
		if err := s.scheduleOnce(s.sched, tag, task); err != nil {
			return err
		}
	}
	s.pending[tag] = struct{}{}
	return nil
}

// scheduleOnce adds the one-shot job for tag. Callers hold s.mu.
func (s *Scheduler) scheduleOnce(sched gocron.Scheduler, tag string, task Task) error {
	_, err := sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(func(jobCtx context.Context) {
			s.mu.Lock()
			delete(s.pending, tag)
			s.mu.Unlock()
			run(jobCtx, tag, task)
		}),
		gocron.WithName(tag),
	)
	if err != nil {
		return fmt.Errorf("failed to register sync %s: %w", tag, err)
	}
	return nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scheduler, err := gocron.NewScheduler(gocron.WithClock(s.clock))
	if err != nil {
		return err
	}

	for _, j := range s.periodic {
		_, err = scheduler.NewJob(
			gocron.DurationJob(j.interval),
			gocron.NewTask(func(jobCtx context.Context) { run(jobCtx, j.name, j.task) }),
			gocron.WithName(j.name),
			gocron.WithStartAt(gocron.WithStartImmediately()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = scheduler.Shutdown()
			return fmt.Errorf("failed to schedule %s: %w", j.name, err)
		}
	}

	for tag := range s.pending {
		if err = s.scheduleOnce(scheduler, tag, s.handlers[tag]); err != nil {
			_ = scheduler.Shutdown()
			return err
		}
	}

	scheduler.Start()
	s.sched = scheduler
	s.stopped = false

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.stopped = true
	s.pending = make(map[string]struct{})
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *Scheduler) started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func run(ctx context.Context, name string, task Task) {
	execID := uuid.NewString()
	if err := task(ctx); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"job": name, "exec_id": execID}).Error("Scheduled job failed")
	}
}

func New(clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		clock:    clock,
		handlers: make(map[string]Task),
		pending:  make(map[string]struct{}),
	}
}
