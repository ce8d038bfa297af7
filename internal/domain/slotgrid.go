package domain

import "github.com/m04kA/SMC-PlaceBooking/pkg/types"

// TimeRange полуоткрытый интервал времени суток [Start, End)
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps true, если интервалы пересекаются: s1 < e2 && s2 < e1
// Интервалы, которые лишь соприкасаются границами, не пересекаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// Contains true, если Start <= t < End
func (r TimeRange) Contains(t types.TimeString) bool {
	return !t.IsBefore(r.Start) && t.IsBefore(r.End)
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// GenerateSlotGrid строит сетку слотов объекта: от открытия с шагом SlotDurationMinutes,
// последний слот заканчивается не позже закрытия, неполный хвост не выдается.
// Сетка зависит только от времени суток, дата на нее не влияет.
func GenerateSlotGrid(place *Place) []TimeRange {
	slots := make([]TimeRange, 0)
	if place == nil || place.SlotDurationMinutes <= 0 {
		return slots
	}

	open, err := place.OpenTime.Minutes()
	if err != nil {
		return slots
	}
	closeAt, err := place.CloseTime.Minutes()
	if err != nil {
		return slots
	}

	step := place.SlotDurationMinutes
	for start := open; start+step <= closeAt; start += step {
		from, err := types.FromMinutes(start)
		if err != nil {
			break
		}
		to, err := from.AddMinutes(step)
		if err != nil {
			break
		}
		slots = append(slots, TimeRange{Start: from, End: to})
	}

	return slots
}

// IsOnGrid true, если интервал в точности совпадает с одним из слотов сетки
func IsOnGrid(place *Place, r TimeRange) bool {
	for _, slot := range GenerateSlotGrid(place) {
		if slot == r {
			return true
		}
	}
	return false
}
