package dto

import (
	"holdhive/internal/domains/storage/model"
	"holdhive/shared"
	gDto "holdhive/shared/dto"
	gModel "holdhive/shared/model"
	"holdhive/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateStorageRequest struct {
	OwnerID     string          `json:"owner_id"     validate:"required"`
	Name        string          `json:"name"         validate:"required,max=100"`
	Location    string          `json:"location"     validate:"required,max=200"`
	Size        string          `json:"size"         validate:"required,max=50"`
	MonthlyRate decimal.Decimal `json:"monthly_rate" validate:"required"`
}

func (c *CreateStorageRequest) ToModel(user string) model.StorageSpace {
	return model.StorageSpace{
		ID:           uuid.NewString(),
		OwnerID:      c.OwnerID,
		Name:         c.Name,
		Location:     c.Location,
		Size:         c.Size,
		MonthlyRate:  c.MonthlyRate,
		Availability: model.AvailabilityAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStorageRequest struct {
	Name         string          `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Location     string          `db:"location"     json:"location"     validate:"omitempty,max=200"`
	Size         string          `db:"size"         json:"size"         validate:"omitempty,max=50"`
	MonthlyRate  decimal.Decimal `db:"monthly_rate" json:"monthly_rate" validate:"omitempty"`
	Availability string          `db:"availability" json:"availability" validate:"omitempty,oneof=available unavailable"`
}

type StorageResponse struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Size         string          `json:"size"`
	MonthlyRate  decimal.Decimal `json:"monthly_rate"`
	Availability string          `json:"availability"`
	ImageURL     string          `json:"image_url,omitempty"`
	gDto.Metadata
}

func (r *StorageResponse) FromModel(model model.StorageSpace) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.Location = model.Location
	r.Size = model.Size
	r.MonthlyRate = model.MonthlyRate
	r.Availability = model.Availability

	if model.ImageURL != nil {
		r.ImageURL = *model.ImageURL
	}

	r.Metadata.FromModel(model.Metadata)
}

type StorageDetailResponse struct {
	StorageResponse
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
	OwnerPhone string `json:"owner_phone"`
}

func (r *StorageDetailResponse) FromModel(model model.StorageDetail) {
	r.StorageResponse.FromModel(model.StorageSpace)
	r.OwnerName = model.OwnerName
	r.OwnerEmail = model.OwnerEmail
	r.OwnerPhone = model.OwnerPhone
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

type GetStoragesResponse struct {
	Storages  []StorageResponse `json:"storages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStoragesResponse) FromModels(models []model.StorageSpace, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Storages = make([]StorageResponse, len(models))
	for i, mod := range models {
		r.Storages[i].FromModel(mod)
	}
}

type GetStorageDetailsResponse struct {
	Storages  []StorageDetailResponse `json:"storages"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetStorageDetailsResponse) FromModels(models []model.StorageDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Storages = make([]StorageDetailResponse, len(models))
	for i, mod := range models {
		r.Storages[i].FromModel(mod)
	}
}
