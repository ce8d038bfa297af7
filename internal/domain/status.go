package domain

import (
	"fmt"
	"strings"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// StatusClass класс статуса: активный (занимает вместимость) или закрытый (история)
type StatusClass int

const (
	StatusClassUnknown StatusClass = iota
	StatusClassActive
	StatusClassClosed
)

// allStatuses порядок статусов для отображения
var allStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Class единственное место, где статус сопоставляется с классом
func (s BookingStatus) Class() StatusClass {
	switch s {
	case StatusPending, StatusConfirmed:
		return StatusClassActive
	case StatusCompleted, StatusCancelled:
		return StatusClassClosed
	default:
		return StatusClassUnknown
	}
}

// IsValid true для известных статусов
func (s BookingStatus) IsValid() bool {
	return s.Class() != StatusClassUnknown
}

// IsActive true для pending и confirmed
func (s BookingStatus) IsActive() bool {
	return s.Class() == StatusClassActive
}

// IsClosed true для completed и cancelled
func (s BookingStatus) IsClosed() bool {
	return s.Class() == StatusClassClosed
}

func (s BookingStatus) String() string {
	return string(s)
}

// AllStatuses все статусы в порядке отображения
func AllStatuses() []BookingStatus {
	out := make([]BookingStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ActiveStatuses статусы, занимающие вместимость
func ActiveStatuses() []BookingStatus {
	return statusesOfClass(StatusClassActive)
}

// StatusStrings переводит статусы в строки (для SQL фильтров)
func StatusStrings(statuses []BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// ParseBookingStatus парсит статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", Reject(ErrInputFormat, CodeInvalidStatus, fmt.Sprintf("неизвестный статус бронирования %q, допустимые: %s",
			s, strings.Join(StatusStrings(AllStatuses()), ", ")))
	}
	return status, nil
}

func statusesOfClass(class StatusClass) []BookingStatus {
	out := make([]BookingStatus, 0, len(allStatuses))
	for _, s := range allStatuses {
		if s.Class() == class {
			out = append(out, s)
		}
	}
	return out
}
