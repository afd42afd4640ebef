package model

import "holdhive/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	RolesTableName = "roles"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldRoleID   = "role_id"
	FieldRoleName = "role_name"
)

// Role ids are fixed seeds; anything that is not an admin registers as a
// regular user.
const (
	RoleIDAdmin = 1001
	RoleIDUser  = 1004

	RoleNameAdmin = "admin"
	RoleNameUser  = "user"
)

type User struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	RoleID int    `db:"role_id"`
	model.Metadata
}

type UserDetail struct {
	User
	RoleName string `db:"role_name" table:"roles" column:"role_name"`
}

func (UserDetail) GetJoinQuery() string {
	return "JOIN roles ON roles.id = users.role_id"
}

// RoleID maps a requested role name onto a seeded role id.
func RoleID(roleName string) int {
	if roleName == RoleNameAdmin {
		return RoleIDAdmin
	}

	return RoleIDUser
}
