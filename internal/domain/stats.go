package domain

import (
	"fmt"
	"time"
)

// StatsPeriod период статистики пользователя
type StatsPeriod string

const (
	PeriodWeek  StatsPeriod = "week"
	PeriodMonth StatsPeriod = "month"
	PeriodYear  StatsPeriod = "year"
)

var statsPeriods = []StatsPeriod{PeriodWeek, PeriodMonth, PeriodYear}

// Days длина периода в днях
func (p StatsPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 0
	}
}

// ParseStatsPeriod парсит период; пустая строка - все периоды
func ParseStatsPeriod(s string) (*StatsPeriod, error) {
	if s == "" {
		return nil, nil
	}
	p := StatsPeriod(s)
	if p.Days() == 0 {
		return nil, Reject(ErrInputFormat, CodeInvalidPeriod, fmt.Sprintf("неверное значение параметра 'period': %q", s))
	}
	return &p, nil
}

// DateRange закрытый диапазон дат [From, To]
type DateRange struct {
	From time.Time
	To   time.Time
}

// UserStats статистика посещений пользователя
type UserStats struct {
	TotalBookings       int
	TotalCompleted      int
	UniquePlacesVisited int
	CompletedByPeriod   map[StatsPeriod]int
	CompletedBetween    *int
}

// ComputeUserStats считает статистику по всем бронированиям пользователя
// period nil - считаются все периоды; between nil - диапазон не считается
func ComputeUserStats(bookings []*Booking, today time.Time, period *StatsPeriod, between *DateRange) UserStats {
	periods := statsPeriods
	if period != nil {
		periods = []StatsPeriod{*period}
	}

	stats := UserStats{
		TotalBookings:     len(bookings),
		CompletedByPeriod: make(map[StatsPeriod]int, len(periods)),
	}
	for _, p := range periods {
		stats.CompletedByPeriod[p] = 0
	}

	var betweenCount int
	places := make(map[int64]struct{})

	for _, b := range bookings {
		if b.Status != StatusCompleted {
			continue
		}
		stats.TotalCompleted++
		places[b.PlaceID] = struct{}{}

		for _, p := range periods {
			since := DateOnly(today).AddDate(0, 0, -p.Days())
			if CompareDates(b.Date, since) >= 0 {
				stats.CompletedByPeriod[p]++
			}
		}

		if between != nil && CompareDates(b.Date, between.From) >= 0 && CompareDates(b.Date, between.To) <= 0 {
			betweenCount++
		}
	}

	stats.UniquePlacesVisited = len(places)
	if between != nil {
		stats.CompletedBetween = &betweenCount
	}

	return stats
}
