package dto

import (
	"holdhive/internal/domains/user/model"
	"holdhive/shared"
	gDto "holdhive/shared/dto"
	gModel "holdhive/shared/model"
	"holdhive/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	RoleName string `json:"role_name" validate:"omitempty,oneof=admin user"`
}

func (c *CreateUserRequest) ToModel(user string) model.User {
	return model.User{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		RoleID: model.RoleID(c.RoleName),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=20"`
}

type PromoteUserRequest struct {
	Email string `json:"email" validate:"required,email,max=100"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RoleName string `json:"role_name"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.UserDetail) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.RoleName = model.RoleName
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.UserDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

type UserRemovedEvent struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	RemovedAt string `json:"removed_at"`
}
