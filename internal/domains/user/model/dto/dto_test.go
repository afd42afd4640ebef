package dto_test

import (
	"testing"

	"holdhive/internal/domains/user/model"
	"holdhive/internal/domains/user/model/dto"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		roleName   string
		wantRoleID int
	}{
		{
			name:       "admin role maps to admin seed",
			roleName:   "admin",
			wantRoleID: model.RoleIDAdmin,
		},
		{
			name:       "user role maps to user seed",
			roleName:   "user",
			wantRoleID: model.RoleIDUser,
		},
		{
			name:       "omitted role defaults to user",
			roleName:   "",
			wantRoleID: model.RoleIDUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateUserRequest{
				Name:     "Jamie",
				Email:    "jamie@example.com",
				RoleName: tt.roleName,
			}

			user := req.ToModel("creator-id")

			if user.ID == "" {
				t.Error("expected a generated id")
			}
			if user.RoleID != tt.wantRoleID {
				t.Errorf("expected role id %d, got %d", tt.wantRoleID, user.RoleID)
			}
			if user.Email != "jamie@example.com" {
				t.Errorf("expected email jamie@example.com, got %s", user.Email)
			}
			if user.CreatedBy != "creator-id" {
				t.Errorf("expected created_by creator-id, got %s", user.CreatedBy)
			}
		})
	}
}

func TestUserResponse_FromModel(t *testing.T) {
	detail := model.UserDetail{
		User: model.User{
			ID:     "user-id",
			Name:   "Jamie",
			Email:  "jamie@example.com",
			RoleID: model.RoleIDUser,
		},
		RoleName: model.RoleNameUser,
	}

	res := &dto.UserResponse{}
	res.FromModel(detail)

	if res.ID != "user-id" {
		t.Errorf("expected ID to be user-id, got %s", res.ID)
	}
	if res.RoleName != model.RoleNameUser {
		t.Errorf("expected role name %s, got %s", model.RoleNameUser, res.RoleName)
	}
}
