package auditlog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

const (
	// RoutingKeyBookingCreated ключ маршрутизации события создания брони
	RoutingKeyBookingCreated = "booking.created"

	defaultPublishTimeout = 5 * time.Second
)

// Publisher отправка события во внешний журнал
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sink отправляет записи аудита без ожидания результата
// publisher == nil - записи только логируются
type Sink struct {
	publisher Publisher
	logger    Logger
	timeout   time.Duration
	now       func() time.Time
	newID     func() string
	wg        sync.WaitGroup
}

// NewSink создает sink; timeout <= 0 заменяется значением по умолчанию
func NewSink(publisher Publisher, timeout time.Duration, logger Logger) *Sink {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &Sink{
		publisher: publisher,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// Notify ставит запись в отправку и сразу возвращает управление
func (s *Sink) Notify(userID int64, action string, ref domain.AuditRef) {
	if !ref.IsValid() {
		s.logger.Warn("AuditLog: skip entry user=%d action=%q: %v (%s)", userID, action, ErrInvalidRef, ref)
		return
	}

	entry := domain.AuditEntry{
		EventID:    s.newID(),
		UserID:     userID,
		Action:     action,
		Ref:        ref,
		OccurredAt: s.now().UTC(),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.send(entry)
	}()
}

// Wait дожидается отправки уже поставленных записей (используется при остановке)
func (s *Sink) Wait() {
	s.wg.Wait()
}

func (s *Sink) send(entry domain.AuditEntry) {
	if s.publisher == nil {
		s.logger.Info("AuditLog: user=%d action=%q ref=%s event=%s", entry.UserID, entry.Action, entry.Ref, entry.EventID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.publisher.PublishJSON(ctx, routingKey(entry.Ref), entry); err != nil {
		s.logger.Error("AuditLog: failed to publish event=%s ref=%s: %v", entry.EventID, entry.Ref, err)
		return
	}
	s.logger.Info("AuditLog: published event=%s ref=%s", entry.EventID, entry.Ref)
}

func routingKey(ref domain.AuditRef) string {
	switch ref.Kind {
	case domain.AuditEntityBooking:
		return RoutingKeyBookingCreated
	default:
		return fmt.Sprintf("%s.event", ref.Kind)
	}
}
