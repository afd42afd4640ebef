package model

import "holdhive/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldStorageID = "storage_id"
	FieldUserID    = "user_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

type Review struct {
	ID        string `db:"id"`
	StorageID string `db:"storage_id"`
	UserID    string `db:"user_id"`
	Rating    int    `db:"rating"`
	Comment   string `db:"comment"`
	model.Metadata
}

type ReviewDetail struct {
	Review
	ReviewerName string `db:"reviewer_name" table:"users" column:"name"`
	StorageName  string `db:"storage_name"  table:"storage_spaces" column:"name"`
	OwnerID      string `db:"owner_id"      table:"storage_spaces" column:"owner_id"`
}

func (ReviewDetail) GetJoinQuery() string {
	return "JOIN users ON users.id = reviews.user_id " +
		"JOIN storage_spaces ON storage_spaces.id = reviews.storage_id"
}
