package place

import "github.com/m04kA/SMC-PlaceBooking/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor
