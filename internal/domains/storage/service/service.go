package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"holdhive/config"
	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	"holdhive/infras/s3"
	paymentRepo "holdhive/internal/domains/payment/repository"
	rentalRepo "holdhive/internal/domains/rental/repository"
	reviewRepo "holdhive/internal/domains/review/repository"
	"holdhive/internal/domains/storage/model"
	"holdhive/internal/domains/storage/model/dto"
	"holdhive/internal/domains/storage/repository"
	"holdhive/shared"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/failure"
	"holdhive/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const imageDirectory = "storages"

type Storage interface {
	Create(ctx context.Context, req dto.CreateStorageRequest) (dto.StorageResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStoragesResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StorageDetailResponse, error)
	GetByOwner(ctx context.Context, params gDto.QueryParams, ownerID string) (dto.GetStorageDetailsResponse, error)
	Update(ctx context.Context, req dto.UpdateStorageRequest, id string) error
	UploadImage(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Storage
	rentalRepo  rentalRepo.Rental
	paymentRepo paymentRepo.Payment
	reviewRepo  reviewRepo.Review
	tx          postgres.TxRunner
	media       s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Storage,
	rentalRepo rentalRepo.Rental,
	paymentRepo paymentRepo.Payment,
	reviewRepo reviewRepo.Review,
	tx postgres.TxRunner,
	media s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Storage {
	return &serviceImpl{
		repo:        repo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		reviewRepo:  reviewRepo,
		tx:          tx,
		media:       media,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStorageRequest) (res dto.StorageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.MonthlyRate.Sign() <= 0 {
		return res, failure.InvalidRate("monthly rate must be positive, got " + req.MonthlyRate.String()) //nolint:wrapcheck
	}

	storage := req.ToModel(user)

	if err = s.repo.Insert(ctx, storage); err != nil {
		log.Error().Err(err).Msg("failed to create storage")

		return res, fmt.Errorf("failed to create storage: %w", err)
	}

	res.FromModel(storage)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStoragesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count storages")

		return res, fmt.Errorf("failed to count storages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get storages")

		return res, fmt.Errorf("failed to get storages: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count storages")

		return res, fmt.Errorf("failed to count storages: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StorageDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	storage, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get storage")

		return res, fmt.Errorf("failed to get storage: %w", err)
	}

	if storage.ID == constant.Empty {
		return res, failure.NotFound("storage") //nolint:wrapcheck
	}

	res.FromModel(storage)

	return res, nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, params gDto.QueryParams, ownerID string) (res dto.GetStorageDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(ownerID, model.FieldOwnerID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count storages")

		return res, fmt.Errorf("failed to count storages: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get storages by owner")

		return res, fmt.Errorf("failed to get storages by owner: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStorageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if !req.MonthlyRate.IsZero() && req.MonthlyRate.Sign() <= 0 {
		return failure.InvalidRate("monthly rate must be positive, got " + req.MonthlyRate.String()) //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if storage exists")

		return fmt.Errorf("failed to check if storage exists: %w", err)
	}

	if !exist {
		return failure.NotFound("storage") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update storage")

		return fmt.Errorf("failed to update storage: %w", err)
	}

	return nil
}

// UploadImage stores the listing image on S3 and records its URL on the
// storage row.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if storage exists")

		return constant.Empty, fmt.Errorf("failed to check if storage exists: %w", err)
	}

	if !exist {
		return constant.Empty, failure.NotFound("storage") //nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(fileHeader.Filename)

	url, err = s.media.UploadFile(ctx, s.cfg.Media.S3.Bucket, imageDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload storage image")

		return constant.Empty, fmt.Errorf("failed to upload storage image: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldImageURL:      url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to record storage image")

		return constant.Empty, fmt.Errorf("failed to record storage image: %w", err)
	}

	return url, nil
}

// Delete refuses while any rental for the storage is still running
// (end date today or later). The check and the prune share one transaction
// behind the same row lock bookings take, so a rental cannot be admitted
// between the check and the delete. Dependents go first: reviews, payments,
// rentals, then the row.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Today()

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		locked, txErr := s.repo.LockTx(ctx, sqltx, id)
		if txErr != nil {
			return fmt.Errorf("failed to lock storage: %w", txErr)
		}

		if !locked {
			return failure.NotFound("storage") //nolint:wrapcheck
		}

		active, txErr := s.rentalRepo.ExistActiveByStorageTx(ctx, sqltx, id, today)
		if txErr != nil {
			return fmt.Errorf("failed to check active rentals: %w", txErr)
		}

		if active {
			return failure.HasActiveObligations("storage has active or future rentals") //nolint:wrapcheck
		}

		if stepErr := s.reviewRepo.DeleteByStorageTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("reviews", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.paymentRepo.DeleteByStorageTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("payments", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.rentalRepo.DeleteByStorageTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("rentals", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); stepErr != nil {
			return failure.CascadePartialFailure("storage", stepErr) //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("storage_id", id).Msg("failed to delete storage")

		return err
	}

	return nil
}
