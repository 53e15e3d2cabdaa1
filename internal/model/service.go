package model

import "time"

// Service is a bookable offering with a fixed cost and duration in minutes.
type Service struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"service_name"`
	Cost      int       `json:"service_cost"`
	Duration  int       `json:"service_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
