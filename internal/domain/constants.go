package domain

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinCapacity            = 1
	MaxCapacity            = 100
	MaxPlaceNameLength     = 255
	MaxPlaceLocationLength = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AuditActionBookingCreated метка действия в журнале аудита при создании брони
const AuditActionBookingCreated = "Создал бронь"
