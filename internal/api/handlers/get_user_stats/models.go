package get_user_stats

import (
	"net/url"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос статистики из query параметров period, from, to
func ToServiceRequest(query url.Values) (*models.StatsRequest, error) {
	req := &models.StatsRequest{Period: query.Get("period")}

	if raw := query.Get("from"); raw != "" {
		from, err := handlers.ParseDate("from", raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := handlers.ParseDate("to", raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
