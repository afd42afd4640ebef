package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	rentalModel "holdhive/internal/domains/rental/model"
	"holdhive/internal/domains/storage/model"
	"holdhive/shared/constant"
	"holdhive/shared/daterange"
	gDto "holdhive/shared/dto"
	"holdhive/shared/logger"
	gRepo "holdhive/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Storage interface {
	Insert(ctx context.Context, model model.StorageSpace) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StorageSpace, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StorageSpace, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StorageDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StorageDetail, error)
	GetAllAvailable(ctx context.Context, params gDto.QueryParams, rng daterange.Range) ([]model.StorageSpace, error)
	CountAvailable(ctx context.Context, rng daterange.Range) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error
	LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error)
	LockByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.StorageSpace]
	detail gRepo.Repository[model.StorageDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Storage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.StorageSpace](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.StorageDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StorageDetail, error) {
	return repo.detail.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StorageDetail, error) {
	return repo.detail.GetAll(ctx, params, filter, columns...)
}

// GetAllAvailable lists storages flagged available with no rental touching
// the requested timeline. A storage with no rentals at all always qualifies.
func (repo *repositoryImpl) GetAllAvailable(ctx context.Context, params gDto.QueryParams, rng daterange.Range) ([]model.StorageSpace, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".storage.GetAllAvailable")
	defer scope.End()

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE %s = :availability
		AND NOT EXISTS (
			SELECT 1 FROM %s
			WHERE %s.%s = %s.%s
			AND %s
		)
		ORDER BY %s ASC`,
		model.TableName,
		model.FieldAvailability,
		rentalModel.TableName,
		rentalModel.TableName, rentalModel.FieldStorageID, model.TableName, model.FieldID,
		rentalModel.OverlapClause,
		model.FieldName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"availability": model.AvailabilityAvailable,
		"start":        rng.Start,
		"end":          rng.End,
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		query += " LIMIT :limit"

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			query += " OFFSET :offset"
		}
	}

	var models []model.StorageSpace

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get available storages: %w", err)
	}

	return models, nil
}

// CountAvailable counts the storages GetAllAvailable would return, ignoring
// pagination, so list responses carry the real total.
func (repo *repositoryImpl) CountAvailable(ctx context.Context, rng daterange.Range) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".storage.CountAvailable")
	defer scope.End()

	query := fmt.Sprintf(`SELECT COUNT(%s) FROM %s
		WHERE %s = :availability
		AND NOT EXISTS (
			SELECT 1 FROM %s
			WHERE %s.%s = %s.%s
			AND %s
		)`,
		model.FieldID,
		model.TableName,
		model.FieldAvailability,
		rentalModel.TableName,
		rentalModel.TableName, rentalModel.FieldStorageID, model.TableName, model.FieldID,
		rentalModel.OverlapClause,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, map[string]any{
		"availability": model.AvailabilityAvailable,
		"start":        rng.Start,
		"end":          rng.End,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count available storages: %w", err)
	}

	return count, nil
}

// LockTx takes a row lock on the storage so concurrent bookings of the same
// listing serialize behind each other. Returns false when no row exists.
func (repo *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".storage.LockTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :id FOR UPDATE", model.FieldID, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var locked string

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &locked, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to lock storage: %w", err)
	}

	return true, nil
}

// LockByOwnerTx locks every storage row of the owner. A booking holds the
// same row lock during admission, so a removal that acquires these locks
// sees every committed rental on the owner's listings before it decides.
func (repo *repositoryImpl) LockByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".storage.LockByOwnerTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :owner_id FOR UPDATE", model.FieldID, model.TableName, model.FieldOwnerID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var ids []string

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &ids, map[string]any{"owner_id": ownerID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock storages by owner: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".storage.DeleteByOwnerTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :owner_id", model.TableName, model.FieldOwnerID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.NamedExecContext(ctx, query, map[string]any{"owner_id": ownerID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete storages by owner: %w", err)
	}

	return nil
}
