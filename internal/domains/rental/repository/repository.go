package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	"holdhive/internal/domains/rental/model"
	storageModel "holdhive/internal/domains/storage/model"
	"holdhive/shared/constant"
	"holdhive/shared/daterange"
	gDto "holdhive/shared/dto"
	"holdhive/shared/logger"
	gRepo "holdhive/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Rental interface {
	Insert(ctx context.Context, model model.Rental) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Rental) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rental, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RentalDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RentalDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, storageID string, rng daterange.Range) (int, error)
	ExistOverlapping(ctx context.Context, storageID string, rng daterange.Range) (bool, error)
	ExistActiveByRenterTx(ctx context.Context, sqltx *sqlx.Tx, renterID string, today time.Time) (bool, error)
	ExistActiveByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string, today time.Time) (bool, error)
	ExistActiveByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string, today time.Time) (bool, error)
	DeleteByRenterTx(ctx context.Context, sqltx *sqlx.Tx, renterID string) error
	DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error
	DeleteByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	detail gRepo.Repository[model.RentalDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.RentalDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RentalDetail, error) {
	return repo.detail.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RentalDetail, error) {
	return repo.detail.GetAll(ctx, params, filter, columns...)
}

// CountOverlappingTx counts rentals touching the candidate timeline under
// the caller's transaction, after the storage row lock is held. Zero means
// the slot is admissible.
func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, storageID string, rng daterange.Range) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.CountOverlappingTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = :storage_id AND %s",
		model.FieldID, model.TableName, model.FieldStorageID, model.OverlapClause,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, map[string]any{
		"storage_id": storageID,
		"start":      rng.Start,
		"end":        rng.End,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping rentals: %w", err)
	}

	return count, nil
}

// ExistOverlapping is the read-side form of the same predicate, used for
// availability checks and quotes.
func (repo *repositoryImpl) ExistOverlapping(ctx context.Context, storageID string, rng daterange.Range) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.ExistOverlapping")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = :storage_id AND %s)",
		model.TableName, model.FieldStorageID, model.OverlapClause,
	)

	return repo.exist(ctx, scope, query, map[string]any{
		"storage_id": storageID,
		"start":      rng.Start,
		"end":        rng.End,
	})
}

// ExistActiveByRenterTx reports rentals ending today or later where the user
// is the renter. It runs under the removal transaction, after the user row is
// locked, so a booking cannot slip in between this check and the cascade.
func (repo *repositoryImpl) ExistActiveByRenterTx(ctx context.Context, sqltx *sqlx.Tx, renterID string, today time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.ExistActiveByRenterTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = :user_id AND %s >= :today)",
		model.TableName, model.FieldUserID, model.FieldEndDate,
	)

	return repo.existTx(ctx, scope, sqltx, query, map[string]any{"user_id": renterID, "today": today})
}

func (repo *repositoryImpl) ExistActiveByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string, today time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.ExistActiveByOwnerTx")
	defer scope.End()

	query := fmt.Sprintf(
		`SELECT EXISTS(
			SELECT 1 FROM %s
			JOIN %s ON %s.%s = %s.%s
			WHERE %s.%s = :owner_id AND %s.%s >= :today
		)`,
		model.TableName,
		storageModel.TableName, storageModel.TableName, storageModel.FieldID, model.TableName, model.FieldStorageID,
		storageModel.TableName, storageModel.FieldOwnerID, model.TableName, model.FieldEndDate,
	)

	return repo.existTx(ctx, scope, sqltx, query, map[string]any{"owner_id": ownerID, "today": today})
}

func (repo *repositoryImpl) ExistActiveByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string, today time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.ExistActiveByStorageTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = :storage_id AND %s >= :today)",
		model.TableName, model.FieldStorageID, model.FieldEndDate,
	)

	return repo.existTx(ctx, scope, sqltx, query, map[string]any{"storage_id": storageID, "today": today})
}

func (repo *repositoryImpl) DeleteByRenterTx(ctx context.Context, sqltx *sqlx.Tx, renterID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.DeleteByRenterTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :user_id", model.TableName, model.FieldUserID)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"user_id": renterID})
}

func (repo *repositoryImpl) DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.DeleteByOwnerTx")
	defer scope.End()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = :owner_id)",
		model.TableName, model.FieldStorageID,
		storageModel.FieldID, storageModel.TableName, storageModel.FieldOwnerID,
	)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"owner_id": ownerID})
}

func (repo *repositoryImpl) DeleteByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.DeleteByStorageTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :storage_id", model.TableName, model.FieldStorageID)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"storage_id": storageID})
}

func (repo *repositoryImpl) exist(ctx context.Context, scope otel.Scope, query string, args map[string]any) (bool, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &exist, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check rentals: %w", err)
	}

	return exist, nil
}

func (repo *repositoryImpl) existTx(ctx context.Context, scope otel.Scope, sqltx *sqlx.Tx, query string, args map[string]any) (bool, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &exist, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check rentals: %w", err)
	}

	return exist, nil
}

func (repo *repositoryImpl) deleteTx(ctx context.Context, scope otel.Scope, sqltx *sqlx.Tx, query string, args map[string]any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete rentals: %w", err)
	}

	return nil
}
