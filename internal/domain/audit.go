package domain

import (
	"fmt"
	"time"
)

// AuditEntityKind вид сущности в журнале аудита
type AuditEntityKind string

// AuditEntityBooking единственный вид сущности, который попадает в журнал
const AuditEntityBooking AuditEntityKind = "booking"

// AuditRef ссылка на сущность журнала; создается через конструкторы вида (BookingRef)
type AuditRef struct {
	Kind AuditEntityKind `json:"kind"`
	ID   int64           `json:"id"`
}

// BookingRef ссылка на бронирование
func BookingRef(id int64) AuditRef {
	return AuditRef{Kind: AuditEntityBooking, ID: id}
}

// IsValid true для известного вида сущности с положительным ID
func (r AuditRef) IsValid() bool {
	switch r.Kind {
	case AuditEntityBooking:
		return r.ID > 0
	default:
		return false
	}
}

func (r AuditRef) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}

// AuditEntry запись журнала аудита
type AuditEntry struct {
	EventID    string    `json:"eventId"`
	UserID     int64     `json:"userId"`
	Action     string    `json:"action"`
	Ref        AuditRef  `json:"ref"`
	OccurredAt time.Time `json:"occurredAt"`
}
