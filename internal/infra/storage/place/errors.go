package place

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда объект не найден
	ErrPlaceNotFound = errors.New("place.repository: place not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("place.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("place.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("place.repository: failed to scan row")

	// ErrTransaction возвращается, когда блокирующее чтение вызвано вне транзакции
	ErrTransaction = errors.New("place.repository: transaction required")
)
