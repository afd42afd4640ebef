package dto

import (
	"holdhive/internal/domains/rental/model"
	"holdhive/shared"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateRentalRequest struct {
	StorageID string `json:"storage_id" validate:"required"`
	UserID    string `json:"user_id"    validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type RentalResponse struct {
	ID         string          `json:"id"`
	StorageID  string          `json:"storage_id"`
	UserID     string          `json:"user_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(model model.Rental) {
	r.ID = model.ID
	r.StorageID = model.StorageID
	r.UserID = model.UserID
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnlyFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateOnlyFormat)
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type RentalDetailResponse struct {
	RentalResponse
	StorageName     string `json:"storage_name"`
	StorageLocation string `json:"storage_location"`
	OwnerID         string `json:"owner_id"`
	OwnerName       string `json:"owner_name"`
	RenterName      string `json:"renter_name"`
}

func (r *RentalDetailResponse) FromModel(model model.RentalDetail) {
	r.RentalResponse.FromModel(model.Rental)
	r.StorageName = model.StorageName
	r.StorageLocation = model.StorageLocation
	r.OwnerID = model.OwnerID
	r.OwnerName = model.OwnerName
	r.RenterName = model.RenterName
}

type GetRentalsResponse struct {
	Rentals   []RentalDetailResponse `json:"rentals"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.RentalDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalDetailResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	StorageID string `json:"storage_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type QuoteResponse struct {
	StorageID string          `json:"storage_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Available bool            `json:"available"`
	Days      int             `json:"days,omitempty"`
	Price     decimal.Decimal `json:"price,omitempty"`
}

type RentalEvent struct {
	Type       string          `json:"type"`
	RentalID   string          `json:"rental_id"`
	StorageID  string          `json:"storage_id"`
	UserID     string          `json:"user_id"`
	StartDate  string          `json:"start_date,omitempty"`
	EndDate    string          `json:"end_date,omitempty"`
	TotalPrice decimal.Decimal `json:"total_price,omitempty"`
}

const (
	EventRentalCreated = "rental.created"
	EventRentalDeleted = "rental.deleted"
)
