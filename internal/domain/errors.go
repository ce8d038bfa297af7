package domain

import (
	"errors"
	"fmt"
)

// Виды отказов. Каждый *Rejection разворачивается в один из них
var (
	ErrInputFormat       = errors.New("input format error")
	ErrValidation        = errors.New("validation failure")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotFound          = errors.New("not found")
)

// RejectionCode машиночитаемая причина отказа
type RejectionCode string

const (
	CodeInvalidDate          RejectionCode = "invalid_date"
	CodeInvalidTime          RejectionCode = "invalid_time"
	CodeInvalidStatus        RejectionCode = "invalid_status"
	CodeInvalidEvent         RejectionCode = "invalid_event"
	CodeInvalidPeriod        RejectionCode = "invalid_period"
	CodeOutsideBusinessHours RejectionCode = "outside_business_hours"
	CodeStartNotBeforeEnd    RejectionCode = "start_not_before_end"
	CodeDurationMismatch     RejectionCode = "duration_mismatch"
	CodeOffGrid              RejectionCode = "off_grid"
	CodeCapacityExceeded     RejectionCode = "capacity_exceeded"
	CodeIllegalTransition    RejectionCode = "illegal_transition"
	CodeWrongActor           RejectionCode = "wrong_actor"
	CodeNotOwner             RejectionCode = "not_owner"
	CodeNotManager           RejectionCode = "not_manager"
	CodeBookingNotFound      RejectionCode = "booking_not_found"
	CodePlaceNotFound        RejectionCode = "place_not_found"
	CodeInvalidHours         RejectionCode = "invalid_hours"
	CodeInvalidSlotDuration  RejectionCode = "invalid_slot_duration"
	CodeInvalidCapacity      RejectionCode = "invalid_capacity"
	CodeInvalidCategory      RejectionCode = "invalid_category"
	CodeInvalidName          RejectionCode = "invalid_name"
	CodeEmptyUpdate          RejectionCode = "empty_update"
)

// Rejection структурированный отказ: вид, код и человекочитаемая причина
type Rejection struct {
	Kind   error
	Code   RejectionCode
	Reason string
}

// Reject создает отказ указанного вида
func Reject(kind error, code RejectionCode, reason string) *Rejection {
	return &Rejection{Kind: kind, Code: code, Reason: reason}
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%v: %s (%s)", r.Kind, r.Reason, r.Code)
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}

// AsRejection извлекает *Rejection из цепочки ошибок
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// KindName имя вида ошибки для API и метрик; для прочих ошибок "internal"
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrInputFormat):
		return "input_format"
	case errors.Is(err, ErrValidation):
		return "validation_failure"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
