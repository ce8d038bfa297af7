package expire_bookings

import "time"

// Response итог одного прохода
type Response struct {
	AsOf      time.Time // Момент прохода в локальной зоне объектов
	Found     int       // Кандидатов на автозавершение
	Completed int       // Переведено в completed
	Skipped   int       // Статус изменился параллельно
	Failed    int       // Ошибки по отдельным записям
}
