package model

import (
	"holdhive/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "storage_spaces"
	EntityName = "storage"

	FieldID           = "id"
	FieldOwnerID      = "owner_id"
	FieldName         = "name"
	FieldLocation     = "location"
	FieldSize         = "size"
	FieldMonthlyRate  = "monthly_rate"
	FieldAvailability = "availability"
	FieldImageURL     = "image_url"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

type StorageSpace struct {
	ID           string          `db:"id"`
	OwnerID      string          `db:"owner_id"`
	Name         string          `db:"name"`
	Location     string          `db:"location"`
	Size         string          `db:"size"`
	MonthlyRate  decimal.Decimal `db:"monthly_rate"`
	Availability string          `db:"availability"`
	ImageURL     *string         `db:"image_url"`
	model.Metadata
}

type StorageDetail struct {
	StorageSpace
	OwnerName  string `db:"owner_name"  table:"users" column:"name"`
	OwnerEmail string `db:"owner_email" table:"users" column:"email"`
	OwnerPhone string `db:"owner_phone" table:"users" column:"phone"`
}

func (StorageDetail) GetJoinQuery() string {
	return "JOIN users ON users.id = storage_spaces.owner_id"
}
