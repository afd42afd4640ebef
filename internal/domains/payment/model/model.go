package model

import (
	"holdhive/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID       = "id"
	FieldRentalID = "rental_id"
	FieldAmount   = "amount"
	FieldStatus   = "status"
)

const (
	StatusPaid = "paid"
)

type Payment struct {
	ID       string          `db:"id"`
	RentalID string          `db:"rental_id"`
	Amount   decimal.Decimal `db:"amount"`
	Status   string          `db:"status"`
	model.Metadata
}
