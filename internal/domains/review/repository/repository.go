package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	"holdhive/internal/domains/review/model"
	storageModel "holdhive/internal/domains/storage/model"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/logger"
	gRepo "holdhive/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type Review interface {
	Upsert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReviewDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReviewDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AverageRating(ctx context.Context, storageID string) (decimal.Decimal, error)
	DeleteByUserTx(ctx context.Context, sqltx *sqlx.Tx, userID string) error
	DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error
	DeleteByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	detail gRepo.Repository[model.ReviewDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.ReviewDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReviewDetail, error) {
	return repo.detail.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReviewDetail, error) {
	return repo.detail.GetAll(ctx, params, filter, columns...)
}

// Upsert writes a review, replacing the reviewer's previous review of the
// same storage if one exists. One review per (storage, user).
func (repo *repositoryImpl) Upsert(ctx context.Context, mod model.Review) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Upsert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s (id, storage_id, user_id, rating, comment, created_at, updated_at, created_by, modified_by)
		VALUES (:id, :storage_id, :user_id, :rating, :comment, :created_at, :updated_at, :created_by, :modified_by)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			updated_at = EXCLUDED.updated_at,
			modified_by = EXCLUDED.modified_by`,
		model.TableName,
		model.FieldStorageID, model.FieldUserID,
		model.FieldRating, model.FieldRating,
		model.FieldComment, model.FieldComment,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert review: %w", err)
	}

	return nil
}

// AverageRating returns the mean rating for a storage, zero when unrated.
func (repo *repositoryImpl) AverageRating(ctx context.Context, storageID string) (decimal.Decimal, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.AverageRating")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(AVG(%s), 0) FROM %s WHERE %s = :storage_id",
		model.FieldRating, model.TableName, model.FieldStorageID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var avg decimal.Decimal

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &avg, map[string]any{"storage_id": storageID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to get average rating: %w", err)
	}

	return avg, nil
}

func (repo *repositoryImpl) DeleteByUserTx(ctx context.Context, sqltx *sqlx.Tx, userID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.DeleteByUserTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :user_id", model.TableName, model.FieldUserID)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"user_id": userID})
}

func (repo *repositoryImpl) DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.DeleteByOwnerTx")
	defer scope.End()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = :owner_id)",
		model.TableName, model.FieldStorageID,
		storageModel.FieldID, storageModel.TableName, storageModel.FieldOwnerID,
	)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"owner_id": ownerID})
}

func (repo *repositoryImpl) DeleteByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.DeleteByStorageTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :storage_id", model.TableName, model.FieldStorageID)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"storage_id": storageID})
}

func (repo *repositoryImpl) deleteTx(ctx context.Context, scope otel.Scope, sqltx *sqlx.Tx, query string, args map[string]any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete reviews: %w", err)
	}

	return nil
}
