package auditlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
)

type recordingPublisher struct {
	mu      sync.Mutex
	keys    []string
	entries []domain.AuditEntry
	err     error
	block   chan struct{}
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, key string, v interface{}) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.entries = append(p.entries, v.(domain.AuditEntry))
	return p.err
}

func TestSink_PublishesBookingCreated(t *testing.T) {
	pub := &recordingPublisher{}
	sink := NewSink(pub, time.Second, logger.NewNop())
	sink.newID = func() string { return "event-1" }

	sink.Notify(10, domain.AuditActionBookingCreated, domain.BookingRef(42))
	sink.Wait()

	require.Len(t, pub.entries, 1)
	assert.Equal(t, RoutingKeyBookingCreated, pub.keys[0])
	assert.Equal(t, "event-1", pub.entries[0].EventID)
	assert.Equal(t, int64(10), pub.entries[0].UserID)
	assert.Equal(t, "Создал бронь", pub.entries[0].Action)
	assert.Equal(t, domain.BookingRef(42), pub.entries[0].Ref)
}

func TestSink_NotifyDoesNotWaitForPublisher(t *testing.T) {
	pub := &recordingPublisher{block: make(chan struct{})}
	sink := NewSink(pub, time.Second, logger.NewNop())

	done := make(chan struct{})
	go func() {
		sink.Notify(10, domain.AuditActionBookingCreated, domain.BookingRef(1))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on publisher")
	}

	close(pub.block)
	sink.Wait()
	assert.Len(t, pub.entries, 1)
}

func TestSink_PublishErrorIsSwallowed(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	sink := NewSink(pub, time.Second, logger.NewNop())

	assert.NotPanics(t, func() {
		sink.Notify(10, domain.AuditActionBookingCreated, domain.BookingRef(1))
		sink.Wait()
	})
}

func TestSink_InvalidRefIsSkipped(t *testing.T) {
	pub := &recordingPublisher{}
	sink := NewSink(pub, time.Second, logger.NewNop())

	sink.Notify(10, "x", domain.AuditRef{Kind: "user", ID: 1})
	sink.Notify(10, "x", domain.BookingRef(0))
	sink.Wait()

	assert.Empty(t, pub.entries)
}

func TestSink_WithoutPublisherOnlyLogs(t *testing.T) {
	sink := NewSink(nil, 0, logger.NewNop())

	assert.NotPanics(t, func() {
		sink.Notify(10, domain.AuditActionBookingCreated, domain.BookingRef(1))
		sink.Wait()
	})
}
