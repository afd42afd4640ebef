package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	"holdhive/internal/domains/payment/model"
	rentalModel "holdhive/internal/domains/rental/model"
	storageModel "holdhive/internal/domains/storage/model"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/logger"
	gRepo "holdhive/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	DeleteByRentalTx(ctx context.Context, sqltx *sqlx.Tx, rentalID string) error
	DeleteByRenterTx(ctx context.Context, sqltx *sqlx.Tx, renterID string) error
	DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error
	DeleteByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Payments always go before their rentals in a cascade; the deletes below
// express the dependent set with the same subqueries the rental deletes use.

func (repo *repositoryImpl) DeleteByRentalTx(ctx context.Context, sqltx *sqlx.Tx, rentalID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.DeleteByRentalTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :rental_id", model.TableName, model.FieldRentalID)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"rental_id": rentalID})
}

func (repo *repositoryImpl) DeleteByRenterTx(ctx context.Context, sqltx *sqlx.Tx, renterID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.DeleteByRenterTx")
	defer scope.End()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = :user_id)",
		model.TableName, model.FieldRentalID,
		rentalModel.FieldID, rentalModel.TableName, rentalModel.FieldUserID,
	)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"user_id": renterID})
}

func (repo *repositoryImpl) DeleteByOwnerTx(ctx context.Context, sqltx *sqlx.Tx, ownerID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.DeleteByOwnerTx")
	defer scope.End()

	query := fmt.Sprintf(
		`DELETE FROM %s WHERE %s IN (
			SELECT %s.%s FROM %s
			JOIN %s ON %s.%s = %s.%s
			WHERE %s.%s = :owner_id
		)`,
		model.TableName, model.FieldRentalID,
		rentalModel.TableName, rentalModel.FieldID, rentalModel.TableName,
		storageModel.TableName, storageModel.TableName, storageModel.FieldID, rentalModel.TableName, rentalModel.FieldStorageID,
		storageModel.TableName, storageModel.FieldOwnerID,
	)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"owner_id": ownerID})
}

func (repo *repositoryImpl) DeleteByStorageTx(ctx context.Context, sqltx *sqlx.Tx, storageID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.DeleteByStorageTx")
	defer scope.End()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = :storage_id)",
		model.TableName, model.FieldRentalID,
		rentalModel.FieldID, rentalModel.TableName, rentalModel.FieldStorageID,
	)

	return repo.deleteTx(ctx, scope, sqltx, query, map[string]any{"storage_id": storageID})
}

func (repo *repositoryImpl) deleteTx(ctx context.Context, scope otel.Scope, sqltx *sqlx.Tx, query string, args map[string]any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete payments: %w", err)
	}

	return nil
}
