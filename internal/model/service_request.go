// File: internal/model/service_request.go
package model

import "time"

// ServiceRequest statuses form an open enumeration; pending, accepted and
// completed are the ones the dashboard aggregates over.
type ServiceRequest struct {
	ID            int       `db:"id" json:"id"`
	CustomerPhone string    `db:"customer_phone" json:"customer_phone"`
	Location      *string   `db:"location" json:"location"`
	Description   *string   `db:"description" json:"description"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
