package dto

import (
	"holdhive/internal/domains/review/model"
	"holdhive/shared"
	gDto "holdhive/shared/dto"
	gModel "holdhive/shared/model"
	"holdhive/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReviewRequest struct {
	StorageID string `json:"storage_id" validate:"required"`
	UserID    string `json:"user_id"    validate:"required"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:        uuid.NewString(),
		StorageID: c.StorageID,
		UserID:    c.UserID,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  int    `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	StorageID    string `json:"storage_id"`
	UserID       string `json:"user_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewer_name,omitempty"`
	StorageName  string `json:"storage_name,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.ReviewDetail) {
	r.ID = model.ID
	r.StorageID = model.StorageID
	r.UserID = model.UserID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.ReviewerName = model.ReviewerName
	r.StorageName = model.StorageName
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating decimal.Decimal  `json:"average_rating"`
	TotalPage     int              `json:"total_page"`
	TotalData     int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.ReviewDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
