package domain

import (
	"fmt"
	"slices"
)

// BookingEvent событие, меняющее статус бронирования
type BookingEvent string

const (
	EventConfirm  BookingEvent = "confirm"
	EventComplete BookingEvent = "complete"
	EventCancel   BookingEvent = "cancel"
	EventExpire   BookingEvent = "expire"
)

// Actor инициатор перехода
type Actor int

const (
	ActorOwner Actor = iota + 1
	ActorManager
	ActorSweeper
)

func (a Actor) String() string {
	switch a {
	case ActorOwner:
		return "owner"
	case ActorManager:
		return "manager"
	case ActorSweeper:
		return "sweeper"
	default:
		return "unknown"
	}
}

type transitionRule struct {
	from  []BookingStatus
	to    BookingStatus
	actor Actor
}

// transitions таблица допустимых переходов; всё, чего в ней нет, запрещено
var transitions = map[BookingEvent]transitionRule{
	EventConfirm:  {from: []BookingStatus{StatusPending}, to: StatusConfirmed, actor: ActorManager},
	EventComplete: {from: []BookingStatus{StatusPending, StatusConfirmed}, to: StatusCompleted, actor: ActorManager},
	EventCancel:   {from: []BookingStatus{StatusPending, StatusConfirmed}, to: StatusCancelled, actor: ActorOwner},
	EventExpire:   {from: []BookingStatus{StatusPending, StatusConfirmed}, to: StatusCompleted, actor: ActorSweeper},
}

// Transition возвращает новый статус или *Rejection вида ErrIllegalTransition
func Transition(from BookingStatus, event BookingEvent, actor Actor) (BookingStatus, error) {
	rule, ok := transitions[event]
	if !ok {
		return "", Reject(ErrIllegalTransition, CodeInvalidEvent, fmt.Sprintf("неизвестное действие %q", event))
	}

	if actor != rule.actor {
		return "", Reject(ErrIllegalTransition, CodeWrongActor,
			fmt.Sprintf("действие %q недоступно для роли %s", event, actor))
	}

	if !slices.Contains(rule.from, from) {
		return "", Reject(ErrIllegalTransition, CodeIllegalTransition,
			fmt.Sprintf("бронь в статусе %q не может перейти по действию %q", from, event))
	}

	return rule.to, nil
}

// ParseBookingEvent парсит событие из строки
func ParseBookingEvent(s string) (BookingEvent, error) {
	event := BookingEvent(s)
	if _, ok := transitions[event]; !ok {
		return "", Reject(ErrInputFormat, CodeInvalidEvent, fmt.Sprintf("неизвестное действие %q", s))
	}
	return event, nil
}
