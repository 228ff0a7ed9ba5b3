package capability

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestSet_WithDefaults(t *testing.T) {
	s := Set{}.WithDefaults()

	require.IsType(t, NoopNotifier{}, s.Notifier)
	require.IsType(t, NoopBackgroundSync{}, s.BackgroundSync)
	require.NoError(t, s.Notifier.Notify(context.Background(), Notification{Title: "x"}))
	require.NoError(t, s.BackgroundSync.Register(context.Background(), "sync-purchases"))
}

func TestSet_WithDefaults_KeepsProvided(t *testing.T) {
	n := NewLogNotifier(nil)
	s := Set{Notifier: n}.WithDefaults()

	require.Same(t, n, s.Notifier)
}

func TestLogNotifier_Notify(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := NewLogNotifier(logger)

	err := n.Notify(context.Background(), Notification{Title: "Sync complete", Body: "2 purchases sent", Tag: "sync-complete"})

	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "Sync complete", entry.Message)
	require.Equal(t, "sync-complete", entry.Data["tag"])
}

func TestNewNotifier(t *testing.T) {
	require.IsType(t, &LogNotifier{}, NewNotifier("log"))
	require.IsType(t, NoopNotifier{}, NewNotifier("none"))
	require.IsType(t, NoopNotifier{}, NewNotifier(""))
}
