package model

import (
	"time"

	"holdhive/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID         = "id"
	FieldStorageID  = "storage_id"
	FieldUserID     = "user_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldTotalPrice = "total_price"
)

// OverlapClause is the one SQL rendering of the timeline overlap predicate.
// Bind :start and :end; any other phrasing gives contradictory answers near
// shared boundary dates and must not appear.
const OverlapClause = "rentals.start_date <= :end AND rentals.end_date >= :start"

type Rental struct {
	ID         string          `db:"id"`
	StorageID  string          `db:"storage_id"`
	UserID     string          `db:"user_id"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	TotalPrice decimal.Decimal `db:"total_price"`
	model.Metadata
}

type RentalDetail struct {
	Rental
	StorageName     string `db:"storage_name"     table:"storage_spaces" column:"name"`
	StorageLocation string `db:"storage_location" table:"storage_spaces" column:"location"`
	OwnerID         string `db:"owner_id"         table:"storage_spaces" column:"owner_id"`
	RenterName      string `db:"renter_name"      table:"renter" column:"name"`
	OwnerName       string `db:"owner_name"       table:"owner" column:"name"`
}

func (RentalDetail) GetJoinQuery() string {
	return "JOIN storage_spaces ON storage_spaces.id = rentals.storage_id " +
		"JOIN users renter ON renter.id = rentals.user_id " +
		"JOIN users owner ON owner.id = storage_spaces.owner_id"
}
