package nower

import "time"

// Nower предоставляет абстракцию для получения текущего времени.
// Время результата розыгрыша и имя файла выгрузки берутся отсюда.
type Nower interface {
	Now() time.Time
}
