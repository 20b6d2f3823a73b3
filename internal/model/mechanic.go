// File: internal/model/mechanic.go
package model

import "time"

type Mechanic struct {
	ID            int       `db:"id" json:"id"`
	Phone         string    `db:"phone" json:"phone"`
	Name          string    `db:"name" json:"name"`
	Location      *string   `db:"location" json:"location"`
	IsVerified    bool      `db:"is_verified" json:"is_verified"`
	Rating        float64   `db:"rating" json:"rating"`
	JobsCompleted int       `db:"jobs_completed" json:"jobs_completed"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
