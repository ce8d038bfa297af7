package auditlog

import "errors"

var (
	// ErrInvalidRef возвращается для ссылки на неизвестную сущность
	ErrInvalidRef = errors.New("auditlog: invalid entity reference")

	// ErrPublish возвращается при ошибке отправки события
	ErrPublish = errors.New("auditlog: failed to publish event")

	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("auditlog: failed to connect to broker")
)
