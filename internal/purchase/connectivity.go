package purchase

import (
	"context"
	"storefront/internal/adapters"
	"storefront/internal/platform/metrics"
	"sync"

	"github.com/sirupsen/logrus"
)

type connState int

const (
	stateUnknown connState = iota
	stateOffline
	stateOnline
)

// ConnectivityMonitor pings the purchase backend and flushes the queue when it comes back.
// The first successful health check after startup counts as coming back.
type ConnectivityMonitor struct {
	checker adapters.HealthChecker
	queue   *Queue
	metrics *metrics.Metrics

	mu    sync.Mutex
	state connState
}

// Check runs one health check. It is meant to be scheduled periodically.
func (m *ConnectivityMonitor) Check(ctx context.Context) error {
	checkErr := m.checker.Ping(ctx)
	online := checkErr == nil
	m.metrics.SetOnline(online)

	m.mu.Lock()
	prev := m.state
	if online {
		m.state = stateOnline
	} else {
		m.state = stateOffline
	}
	m.mu.Unlock()

	if !online {
		if prev != stateOffline {
			logrus.WithError(checkErr).Warn("Purchase backend unreachable, purchases will be queued")
		}
		return nil
	}
	if prev == stateOnline {
		return nil
	}

	logrus.Info("🌐 Purchase backend reachable, checking pending purchases")
	has, err := m.queue.Has(ctx)
	if err != nil {
		return err
	}
	if !has {
		return nil
	}
	res, err := m.queue.Sync(ctx)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"success": res.Success, "failed": res.Failed}).Info("Pending purchases synced")
	return nil
}

// Online reports whether the last health check succeeded.
func (m *ConnectivityMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == stateOnline
}

func NewConnectivityMonitor(checker adapters.HealthChecker, queue *Queue, m *metrics.Metrics) *ConnectivityMonitor {
	return &ConnectivityMonitor{checker: checker, queue: queue, metrics: m}
}
