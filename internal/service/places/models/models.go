package models

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// Request модели

// ListPlacesRequest запрос списка объектов
type ListPlacesRequest struct {
	Category *string `json:"category,omitempty"`
}

// UpdatePlaceRequest частичное обновление расписания объекта
// Отсутствующее поле не меняется
type UpdatePlaceRequest struct {
	OpenTime            *string `json:"openTime,omitempty"`  // "08:00"
	CloseTime           *string `json:"closeTime,omitempty"` // "22:00"
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	Capacity            *int    `json:"capacity,omitempty"`
}

// Response модели

// PlaceResponse ответ с данными объекта
type PlaceResponse struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Bio                 string    `json:"bio"`
	Location            string    `json:"location"`
	Category            string    `json:"category"`
	CategoryTitle       string    `json:"categoryTitle"`
	OpenTime            string    `json:"openTime"`
	CloseTime           string    `json:"closeTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	Capacity            int       `json:"capacity"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// PlaceListResponse ответ со списком объектов
type PlaceListResponse struct {
	Places []PlaceResponse `json:"places"`
}

// FromDomainPlace конвертирует domain модель в DTO
func FromDomainPlace(p *domain.Place) *PlaceResponse {
	if p == nil {
		return nil
	}

	return &PlaceResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Bio:                 p.Bio,
		Location:            p.Location,
		Category:            string(p.Category),
		CategoryTitle:       p.Category.Title(),
		OpenTime:            p.OpenTime.String(),
		CloseTime:           p.CloseTime.String(),
		SlotDurationMinutes: p.SlotDurationMinutes,
		Capacity:            p.Capacity,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// FromDomainPlaceList конвертирует список domain моделей в DTO
func FromDomainPlaceList(places []*domain.Place) *PlaceListResponse {
	resp := &PlaceListResponse{Places: make([]PlaceResponse, 0, len(places))}
	for _, p := range places {
		if item := FromDomainPlace(p); item != nil {
			resp.Places = append(resp.Places, *item)
		}
	}
	return resp
}
