package get_user_stats

import (
	"context"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/bookings/models"
)

type BookingService interface {
	UserStats(ctx context.Context, principal domain.Principal, req *models.StatsRequest) (*models.UserStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
