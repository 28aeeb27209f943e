package model

import "time"

// RangeStatus состояние выделенного экземпляру диапазона
type RangeStatus string

const (
	RangeStatusActive    RangeStatus = "ACTIVE"
	RangeStatusExhausted RangeStatus = "EXHAUSTED"
	RangeStatusExpired   RangeStatus = "EXPIRED"
)

// RangeAllocation запись о диапазоне [Start, End], выданном экземпляру сервиса
type RangeAllocation struct {
	ID          int64
	InstanceID  string
	Start       int64
	End         int64 // включительно
	AllocatedAt time.Time
	ExhaustedAt *time.Time
	Status      RangeStatus
}

// Size возвращает количество значений в диапазоне
func (r RangeAllocation) Size() int64 {
	return r.End - r.Start + 1
}

// RangeSnapshot состояние аллокатора экземпляра
type RangeSnapshot struct {
	InstanceID string `json:"instanceId"`
	Start      int64  `json:"start"`
	Cursor     int64  `json:"cursor"`
	End        int64  `json:"end"`
	Remaining  int64  `json:"remaining"`
	NextStart  *int64 `json:"nextStart,omitempty"`
	NextEnd    *int64 `json:"nextEnd,omitempty"`
	Refills    int64  `json:"refills"`
	Ready      bool   `json:"ready"`
}
