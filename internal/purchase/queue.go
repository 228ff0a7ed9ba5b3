package purchase

import (
	"context"
	"fmt"
	"storefront/internal/adapters"
	"storefront/internal/domain"
	"storefront/internal/platform/capability"
	"storefront/internal/platform/metrics"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// SyncTag is the background-sync tag a saved purchase registers.
const SyncTag = "sync-purchases"

// Queue holds purchases that could not be submitted yet and replays them in order.
type Queue struct {
	store     adapters.PendingPurchaseStore
	submitter adapters.PurchaseSubmitter
	caps      capability.Set
	clock     clockwork.Clock
	metrics   *metrics.Metrics

	syncs singleflight.Group
}

func (q *Queue) Save(ctx context.Context, intent domain.PurchaseIntent) (domain.PendingPurchase, error) {
	p := domain.PendingPurchase{
		ID:            uuid.NewString(),
		GameID:        intent.GameID,
		GameName:      intent.GameName,
		Price:         intent.Price,
		Timestamp:     q.now(),
		UserID:        intent.UserID,
		PaymentMethod: intent.PaymentMethod,
	}
	if err := q.store.Append(ctx, p); err != nil {
		return domain.PendingPurchase{}, fmt.Errorf("failed to save pending purchase: %w", err)
	}
	q.metrics.PurchaseQueued()
	if n, err := q.Count(ctx); err == nil {
		q.metrics.SetPending(n)
	}

	if err := q.caps.BackgroundSync.Register(ctx, SyncTag); err != nil {
		logrus.WithError(err).WithField("purchase_id", p.ID).Warn("Background sync registration failed")
	}
	return p, nil
}

// now is truncated to milliseconds so a saved purchase reads back unchanged from any store.
func (q *Queue) now() time.Time {
	return q.clock.Now().UTC().Truncate(time.Millisecond)
}

func (q *Queue) List(ctx context.Context) ([]domain.PendingPurchase, error) {
	purchases, err := q.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending purchases: %w", err)
	}
	return purchases, nil
}

func (q *Queue) Count(ctx context.Context) (int, error) {
	purchases, err := q.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(purchases), nil
}

func (q *Queue) Has(ctx context.Context) (bool, error) {
	n, err := q.Count(ctx)
	return n > 0, err
}

// Sync submits every queued purchase one at a time and drops the accepted ones.
// Callers arriving while a sync is running share its result instead of starting another.
// The run is not bound to the caller's cancellation.
func (q *Queue) Sync(ctx context.Context) (domain.SyncResult, error) {
	runCtx := context.WithoutCancel(ctx)
	v, err, _ := q.syncs.Do("sync", func() (any, error) {
		return q.sync(runCtx)
	})
	if err != nil {
		return domain.SyncResult{}, err
	}
	return v.(domain.SyncResult), nil
}

func (q *Queue) sync(ctx context.Context) (domain.SyncResult, error) {
	var res domain.SyncResult

	pending, err := q.List(ctx)
	if err != nil {
		return res, err
	}
	if len(pending) == 0 {
		return res, nil
	}

	started := q.clock.Now()
	logrus.WithField("count", len(pending)).Info("Syncing pending purchases")

	for _, p := range pending {
		log := logrus.WithFields(logrus.Fields{"purchase_id": p.ID, "game": p.GameName})
		if err = q.submitter.Submit(ctx, p); err != nil {
			res.Failed++
			q.metrics.PurchaseSubmitted(false)
			log.WithError(err).Warn("Pending purchase not sent, keeping it queued")
			continue
		}
		res.Success++
		q.metrics.PurchaseSubmitted(true)
		if err = q.store.Remove(ctx, p.ID); err != nil {
			// submitted but still stored; the next sync will send it again
			log.WithError(err).Error("Failed to remove submitted purchase")
			continue
		}
		log.Info("Pending purchase sent")
	}

	q.metrics.SyncDuration(q.clock.Since(started).Seconds())
	if n, err := q.Count(ctx); err == nil {
		q.metrics.SetPending(n)
	}
	if res.Success > 0 {
		q.notify(ctx, res)
	}
	return res, nil
}

func (q *Queue) notify(ctx context.Context, res domain.SyncResult) {
	body := fmt.Sprintf("All purchases sent (%d)", res.Success)
	if res.Failed > 0 {
		body = fmt.Sprintf("Sent %d purchases, %d could not be sent", res.Success, res.Failed)
	}
	err := q.caps.Notifier.Notify(ctx, capability.Notification{
		Title: "Sync complete",
		Body:  body,
		Tag:   "sync-complete",
	})
	if err != nil {
		logrus.WithError(err).Warn("Sync notification failed")
	}
}

// Clear drops every queued purchase. There is no undo.
func (q *Queue) Clear(ctx context.Context) error {
	if err := q.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear pending purchases: %w", err)
	}
	q.metrics.SetPending(0)
	return nil
}

// SyncTask adapts Sync to the scheduler's task signature.
func (q *Queue) SyncTask(ctx context.Context) error {
	_, err := q.Sync(ctx)
	return err
}

func NewQueue(
	store adapters.PendingPurchaseStore,
	submitter adapters.PurchaseSubmitter,
	caps capability.Set,
	clock clockwork.Clock,
	m *metrics.Metrics,
) *Queue {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Queue{
		store:     store,
		submitter: submitter,
		caps:      caps.WithDefaults(),
		clock:     clock,
		metrics:   m,
	}
}

