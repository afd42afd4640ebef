package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"holdhive/internal/domains/rental/model"
	"holdhive/internal/domains/rental/model/dto"
	gModel "holdhive/shared/model"
)

func TestRentalResponse_FromModel(t *testing.T) {
	rental := model.Rental{
		ID:         "rental-id",
		StorageID:  "storage-id",
		UserID:     "renter-id",
		StartDate:  time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC),
		TotalPrice: decimal.NewFromInt(300),
		Metadata: gModel.Metadata{
			CreatedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			ModifiedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			CreatedBy:  "renter-id",
			ModifiedBy: "renter-id",
		},
	}

	res := &dto.RentalResponse{}
	res.FromModel(rental)

	if res.ID != "rental-id" {
		t.Errorf("expected ID to be rental-id, got %s", res.ID)
	}
	if res.StartDate != "2025-01-20" {
		t.Errorf("expected StartDate to be 2025-01-20, got %s", res.StartDate)
	}
	if res.EndDate != "2025-01-29" {
		t.Errorf("expected EndDate to be 2025-01-29, got %s", res.EndDate)
	}
	if !res.TotalPrice.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected TotalPrice to be 300, got %s", res.TotalPrice.String())
	}
}

func TestRentalDetailResponse_FromModel(t *testing.T) {
	detail := model.RentalDetail{
		Rental: model.Rental{
			ID:        "rental-id",
			StorageID: "storage-id",
			UserID:    "renter-id",
			StartDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC),
		},
		StorageName:     "Garage Unit",
		StorageLocation: "Springfield",
		OwnerID:         "owner-id",
		OwnerName:       "Alex",
		RenterName:      "Jamie",
	}

	res := &dto.RentalDetailResponse{}
	res.FromModel(detail)

	if res.StorageName != "Garage Unit" {
		t.Errorf("expected StorageName to be Garage Unit, got %s", res.StorageName)
	}
	if res.OwnerName != "Alex" {
		t.Errorf("expected OwnerName to be Alex, got %s", res.OwnerName)
	}
	if res.RenterName != "Jamie" {
		t.Errorf("expected RenterName to be Jamie, got %s", res.RenterName)
	}
}

func TestGetRentalsResponse_FromModels(t *testing.T) {
	models := []model.RentalDetail{
		{Rental: model.Rental{ID: "rental-1"}},
		{Rental: model.Rental{ID: "rental-2"}},
		{Rental: model.Rental{ID: "rental-3"}},
	}

	res := &dto.GetRentalsResponse{}
	res.FromModels(models, 25, 10)

	if len(res.Rentals) != 3 {
		t.Errorf("expected 3 rentals, got %d", len(res.Rentals))
	}
	if res.TotalData != 25 {
		t.Errorf("expected TotalData to be 25, got %d", res.TotalData)
	}
	if res.TotalPage != 3 {
		t.Errorf("expected TotalPage to be 3, got %d", res.TotalPage)
	}
	if res.Rentals[0].ID != "rental-1" {
		t.Errorf("expected first rental to be rental-1, got %s", res.Rentals[0].ID)
	}
}
