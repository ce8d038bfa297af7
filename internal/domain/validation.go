package domain

import (
	"fmt"
)

// ValidationContext данные, на которых проверяется бронирование
type ValidationContext struct {
	Place *Place
	// Existing бронирования того же объекта на ту же дату; закрытые игнорируются
	Existing []*Booking
}

// ValidateBooking проверяет бронирование перед сохранением. Возвращает nil или *Rejection.
//
// Порядок проверок:
//  1. интервал внутри часов работы объекта
//  2. start < end
//  3. длительность равна длительности слота (считается по дате и времени)
//  4. вместимость: активных пересекающихся бронирований (кроме самого b) меньше capacity
//  5. интервал совпадает со слотом сетки
//
// Пересечение с заполненным окном сообщается как CapacityExceeded даже для интервала вне сетки.
// Закрытые бронирования не проверяются.
func ValidateBooking(b *Booking, vc ValidationContext) error {
	if b.Status.IsClosed() {
		return nil
	}

	place := vc.Place
	if place == nil {
		return Reject(ErrNotFound, CodePlaceNotFound, "объект не найден")
	}

	if err := b.StartTime.Validate(); err != nil {
		return Reject(ErrInputFormat, CodeInvalidTime, "некорректное время начала, ожидается HH:MM")
	}
	if err := b.EndTime.Validate(); err != nil {
		return Reject(ErrInputFormat, CodeInvalidTime, "некорректное время окончания, ожидается HH:MM")
	}

	if b.StartTime.IsBefore(place.OpenTime) || b.EndTime.IsAfter(place.CloseTime) {
		return Reject(ErrValidation, CodeOutsideBusinessHours, "время бронирования вне рабочего времени объекта")
	}

	if !b.StartTime.IsBefore(b.EndTime) {
		return Reject(ErrValidation, CodeStartNotBeforeEnd, "время начала должно быть раньше времени окончания")
	}

	startAt, err := b.StartTime.OnDate(b.Date)
	if err != nil {
		return Reject(ErrInputFormat, CodeInvalidTime, "некорректное время начала, ожидается HH:MM")
	}
	endAt, err := b.EndTime.OnDate(b.Date)
	if err != nil {
		return Reject(ErrInputFormat, CodeInvalidTime, "некорректное время окончания, ожидается HH:MM")
	}
	if endAt.Sub(startAt) != place.SlotDuration() {
		return Reject(ErrValidation, CodeDurationMismatch,
			fmt.Sprintf("продолжительность бронирования должна быть равна продолжительности слота (%d мин)", place.SlotDurationMinutes))
	}

	if CountOverlapping(vc.Existing, b.Range(), b.ID) >= place.Capacity {
		return Reject(ErrCapacityExceeded, CodeCapacityExceeded,
			"максимальное количество бронирований на это время уже достигнуто")
	}

	if !IsOnGrid(place, b.Range()) {
		return Reject(ErrValidation, CodeOffGrid, "выбранное время не соответствует доступным слотам")
	}

	return nil
}
