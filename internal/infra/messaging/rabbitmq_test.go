//go:build unit

package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	err  error
	sent []amqp.Publishing
	keys []string
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func testEvent(t *testing.T) shared.Event {
	t.Helper()
	e, err := shared.NewEvent(shared.EventReservationOpened, 42, map[string]int{"lot_id": 3}, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	return e
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(nil, ch, "parking.events")
	e := testEvent(t)

	require.NoError(t, p.Publish(context.Background(), e))

	require.Len(t, ch.sent, 1)
	msg := ch.sent[0]
	assert.Equal(t, "parking.events", ch.keys[0])
	assert.Equal(t, e.ID.String(), msg.MessageId)
	assert.Equal(t, shared.EventReservationOpened, msg.Type)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.JSONEq(t, `{"lot_id":3}`, string(msg.Body))
}

func TestRabbitMQPublisher_BreakerOpens(t *testing.T) {
	ch := &fakeChannel{err: errors.New("connection reset")}
	p := newPublisher(nil, ch, "parking.events")
	e := shared.Event{ID: uuid.New(), Type: shared.EventReservationClosed}

	for i := 0; i < 3; i++ {
		err := p.Publish(context.Background(), e)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBrokerUnavailable)
	}

	ch.err = nil
	err := p.Publish(context.Background(), e)
	assert.ErrorIs(t, err, ErrBrokerUnavailable)
	assert.Empty(t, ch.sent)
}

func TestRabbitMQPublisher_CanceledContext(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(nil, ch, "parking.events")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, testEvent(t)), context.Canceled)
	assert.Empty(t, ch.sent)
}
