package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// PlaceCategory категория объекта
type PlaceCategory string

const (
	CategoryGym       PlaceCategory = "gym"
	CategoryArena     PlaceCategory = "arena"
	CategoryEquipment PlaceCategory = "equipment"
	CategoryPool      PlaceCategory = "pool"
	CategorySauna     PlaceCategory = "sauna"
	CategoryOther     PlaceCategory = "other"
)

var categoryTitles = map[PlaceCategory]string{
	CategoryGym:       "Тренажерный зал",
	CategoryArena:     "Аренда спортивных площадок",
	CategoryEquipment: "Аренда снаряжения",
	CategoryPool:      "Бассейн",
	CategorySauna:     "Сауна",
	CategoryOther:     "Другое",
}

// IsValid true для известных категорий
func (c PlaceCategory) IsValid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title название категории для отображения
func (c PlaceCategory) Title() string {
	return categoryTitles[c]
}

// ParsePlaceCategory парсит категорию из строки
func ParsePlaceCategory(s string) (PlaceCategory, error) {
	c := PlaceCategory(strings.ToLower(s))
	if !c.IsValid() {
		return "", Reject(ErrInputFormat, CodeInvalidCategory, fmt.Sprintf("неизвестная категория %q", s))
	}
	return c, nil
}

// Place бронируемый объект: часы работы [OpenTime, CloseTime), длительность слота и вместимость
type Place struct {
	ID                  int64
	Name                string
	Bio                 string
	Location            string
	Category            PlaceCategory
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	Capacity            int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SlotDuration длительность слота
func (p *Place) SlotDuration() time.Duration {
	return time.Duration(p.SlotDurationMinutes) * time.Minute
}

// Hours часы работы как интервал
func (p *Place) Hours() TimeRange {
	return TimeRange{Start: p.OpenTime, End: p.CloseTime}
}

// IsOpenAt true, если open <= t < close
func (p *Place) IsOpenAt(t types.TimeString) bool {
	return p.Hours().Contains(t)
}

// Validate проверяет инварианты объекта
func (p *Place) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" || len(name) > MaxPlaceNameLength {
		return Reject(ErrValidation, CodeInvalidName, "название объекта должно быть непустым и не длиннее 255 символов")
	}
	if len(p.Location) > MaxPlaceLocationLength {
		return Reject(ErrValidation, CodeInvalidName, "адрес объекта не должен быть длиннее 255 символов")
	}
	if !p.Category.IsValid() {
		return Reject(ErrValidation, CodeInvalidCategory, fmt.Sprintf("неизвестная категория %q", p.Category))
	}
	return p.ValidateSchedule()
}

// ValidateSchedule проверяет часы работы, длительность слота и вместимость
func (p *Place) ValidateSchedule() error {
	if err := p.OpenTime.Validate(); err != nil {
		return Reject(ErrInputFormat, CodeInvalidTime, "некорректное время открытия, ожидается HH:MM")
	}
	if err := p.CloseTime.Validate(); err != nil {
		return Reject(ErrInputFormat, CodeInvalidTime, "некорректное время закрытия, ожидается HH:MM")
	}
	if !p.OpenTime.IsBefore(p.CloseTime) {
		return Reject(ErrValidation, CodeInvalidHours, "время открытия должно быть раньше времени закрытия")
	}
	if p.SlotDurationMinutes < MinSlotDurationMinutes || p.SlotDurationMinutes > MaxSlotDurationMinutes {
		return Reject(ErrValidation, CodeInvalidSlotDuration,
			fmt.Sprintf("длительность слота должна быть от %d до %d минут", MinSlotDurationMinutes, MaxSlotDurationMinutes))
	}
	if p.Capacity < MinCapacity || p.Capacity > MaxCapacity {
		return Reject(ErrValidation, CodeInvalidCapacity,
			fmt.Sprintf("вместимость должна быть от %d до %d", MinCapacity, MaxCapacity))
	}
	return nil
}

// PlaceScheduleUpdate частичное обновление расписания объекта менеджером
// nil означает "не менять"
type PlaceScheduleUpdate struct {
	OpenTime            *types.TimeString
	CloseTime           *types.TimeString
	SlotDurationMinutes *int
	Capacity            *int
}

// IsEmpty true, если не передано ни одного поля
func (u PlaceScheduleUpdate) IsEmpty() bool {
	return u.OpenTime == nil && u.CloseTime == nil && u.SlotDurationMinutes == nil && u.Capacity == nil
}

// ApplyTo возвращает копию объекта с примененными изменениями
func (u PlaceScheduleUpdate) ApplyTo(p *Place) *Place {
	updated := *p
	if u.OpenTime != nil {
		updated.OpenTime = *u.OpenTime
	}
	if u.CloseTime != nil {
		updated.CloseTime = *u.CloseTime
	}
	if u.SlotDurationMinutes != nil {
		updated.SlotDurationMinutes = *u.SlotDurationMinutes
	}
	if u.Capacity != nil {
		updated.Capacity = *u.Capacity
	}
	return &updated
}

// PlaceFilter фильтр списка объектов
type PlaceFilter struct {
	Category *PlaceCategory
}
