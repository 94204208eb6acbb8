//go:build unit

package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/testutil/memuow"
	"parking-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	failOn map[string]bool
	sent   []string
}

func (p *fakePublisher) Publish(_ context.Context, e shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failOn[e.ID.String()] {
		return errors.New("broker rejected message")
	}
	p.sent = append(p.sent, e.ID.String())
	return nil
}

type fakeOutboxMetrics struct {
	published, failed int
	pending           int64
}

func (m *fakeOutboxMetrics) EventPublished()          { m.published++ }
func (m *fakeOutboxMetrics) EventPublishFailed()      { m.failed++ }
func (m *fakeOutboxMetrics) SetPendingEvents(n int64) { m.pending = n }

var relayNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seedEvents(t *testing.T, store *memuow.Store, n int) []shared.Event {
	t.Helper()
	var out []shared.Event
	for i := 0; i < n; i++ {
		e, err := shared.NewEvent(shared.EventReservationOpened, int64(i+1), map[string]int{"n": i}, relayNow)
		require.NoError(t, err)
		store.AppendEvent(e)
		out = append(out, e)
	}
	return out
}

func newTestRelay(store *memuow.Store, pub EventPublisher, m OutboxMetrics) *OutboxRelay {
	return NewOutboxRelay(store, pub, clock.NewMockClock(relayNow), m, config.OutboxConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    2,
		MaxAttempts:  2,
	})
}

func TestOutboxRelay_RelayOnce(t *testing.T) {
	t.Run("publishes in order and marks events", func(t *testing.T) {
		store := memuow.New()
		events := seedEvents(t, store, 3)
		pub := &fakePublisher{}
		m := &fakeOutboxMetrics{}
		relay := newTestRelay(store, pub, m)

		n, err := relay.RelayOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{events[0].ID.String(), events[1].ID.String()}, pub.sent)
		assert.Equal(t, int64(1), m.pending)

		at, ok := store.PublishedAt(events[0].ID)
		require.True(t, ok)
		assert.Equal(t, relayNow, at)

		n, err = relay.RelayOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 3, m.published)
		assert.Zero(t, m.pending)
	})

	t.Run("failure charges the head event and stops the batch", func(t *testing.T) {
		store := memuow.New()
		events := seedEvents(t, store, 2)
		pub := &fakePublisher{failOn: map[string]bool{events[0].ID.String(): true}}
		m := &fakeOutboxMetrics{}
		relay := newTestRelay(store, pub, m)

		n, err := relay.RelayOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, pub.sent)
		assert.Equal(t, 1, m.failed)
		assert.Equal(t, 1, store.Events()[0].Attempts)
		assert.Zero(t, store.Events()[1].Attempts)
	})

	t.Run("events past max attempts are skipped", func(t *testing.T) {
		store := memuow.New()
		events := seedEvents(t, store, 2)
		pub := &fakePublisher{failOn: map[string]bool{events[0].ID.String(): true}}
		relay := newTestRelay(store, pub, &fakeOutboxMetrics{})

		for i := 0; i < 2; i++ {
			_, err := relay.RelayOnce(context.Background())
			require.NoError(t, err)
		}
		_, err := relay.RelayOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{events[1].ID.String()}, pub.sent)
		_, ok := store.PublishedAt(events[0].ID)
		assert.False(t, ok)
	})
}

func TestOutboxRelay_RunStopsOnCancel(t *testing.T) {
	store := memuow.New()
	seedEvents(t, store, 5)
	pub := &fakePublisher{}
	relay := newTestRelay(store, pub, &fakeOutboxMetrics{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.sent) == 5
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}
