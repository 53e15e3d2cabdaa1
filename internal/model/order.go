package model

import "time"

// Order links a user to the services they booked. The association is
// one-directional; related rows are fetched by explicit repository queries,
// not by navigating a loaded object graph.
type Order struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	BeginAt   *time.Time `json:"begin_at"`
	EndsAt    *time.Time `json:"ends_at"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Services  []Service  `gorm:"many2many:order_services" json:"-"`
}
