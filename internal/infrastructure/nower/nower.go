package nower

import "time"

type nowerImpl struct{}

// New создаёт реализацию на базе системных часов. Время возвращается в UTC.
func New() Nower {
	return nowerImpl{}
}

// Now возвращает текущее системное время в UTC.
func (nowerImpl) Now() time.Time {
	return time.Now().UTC()
}

// Fixed всегда возвращает одно и то же время.
type Fixed time.Time

// Now возвращает зафиксированное время.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
