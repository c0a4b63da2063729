package domain

import "fmt"

// AvailableSlot is a derived one-hour slot [StartHour, EndHour).
// Slots carry no identity; two slots with equal hours are equal.
type AvailableSlot struct {
	StartHour int
	EndHour   int
}

// Label formats the slot as "HH:00 - HH:00".
func (s AvailableSlot) Label() string {
	return fmt.Sprintf("%02d:00 - %02d:00", s.StartHour, s.EndHour)
}

// StartTime formats the slot start as "HH:00".
func (s AvailableSlot) StartTime() string {
	return fmt.Sprintf("%02d:00", s.StartHour)
}

// EndTime formats the slot end as "HH:00".
func (s AvailableSlot) EndTime() string {
	return fmt.Sprintf("%02d:00", s.EndHour)
}
