// File: internal/model/payment.go
package model

import (
	"encoding/json"
	"time"
)

const (
	PaymentTypeCollection = "collection"
	PaymentTypePayout     = "payout"

	PaymentStatusSuccess = "success"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID            int             `db:"id" json:"id"`
	TransactionID string          `db:"transaction_id" json:"transaction_id"`
	Phone         string          `db:"phone" json:"phone"`
	Amount        float64         `db:"amount" json:"amount"`
	Type          string          `db:"type" json:"type"`
	Status        string          `db:"status" json:"status"`
	Reason        *string         `db:"reason" json:"reason"`
	Provider      *string         `db:"provider" json:"provider"`
	Metadata      json.RawMessage `db:"metadata" json:"metadata"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}
