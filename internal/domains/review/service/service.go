package service

import (
	"context"
	"fmt"

	"holdhive/config"
	"holdhive/infras/otel"
	"holdhive/internal/domains/review/model"
	"holdhive/internal/domains/review/model/dto"
	"holdhive/internal/domains/review/repository"
	storageModel "holdhive/internal/domains/storage/model"
	storageRepo "holdhive/internal/domains/storage/repository"
	userModel "holdhive/internal/domains/user/model"
	userRepo "holdhive/internal/domains/user/repository"
	"holdhive/shared"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Get(ctx context.Context, id string) (dto.ReviewResponse, error)
	GetByStorage(ctx context.Context, params gDto.QueryParams, storageID string) (dto.GetReviewsResponse, error)
	GetByOwner(ctx context.Context, params gDto.QueryParams, ownerID string) (dto.GetReviewsResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Review
	storageRepo storageRepo.Storage
	userRepo    userRepo.User
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Review, storageRepo storageRepo.Storage, userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Review {
	return &serviceImpl{
		repo:        repo,
		storageRepo: storageRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// Create writes a review; a second review by the same user for the same
// storage replaces the first.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	storageExists, err := s.storageRepo.Exist(ctx, shared.FilterByID(req.StorageID, storageModel.FieldID, storageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if storage exists")

		return fmt.Errorf("failed to check if storage exists: %w", err)
	}

	if !storageExists {
		return failure.NotFound("storage") //nolint:wrapcheck
	}

	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return failure.NotFound("user") //nolint:wrapcheck
	}

	if err = s.repo.Upsert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return res, failure.NotFound("review") //nolint:wrapcheck
	}

	res.FromModel(review)

	return res, nil
}

// GetByStorage lists a storage's reviews along with its average rating.
func (s *serviceImpl) GetByStorage(ctx context.Context, params gDto.QueryParams, storageID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByStorage")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.GetAll(ctx, params, shared.FilterByField(storageID, model.FieldStorageID, model.TableName))
	if err != nil {
		return res, err
	}

	avg, err := s.repo.AverageRating(ctx, storageID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get average rating")

		return res, fmt.Errorf("failed to get average rating: %w", err)
	}

	res.AverageRating = avg

	return res, nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, params gDto.QueryParams, ownerID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.GetAll(ctx, params, shared.FilterByField(ownerID, storageModel.FieldOwnerID, storageModel.TableName))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReviewRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return fmt.Errorf("failed to check if review exists: %w", err)
	}

	if !exist {
		return failure.NotFound("review") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return fmt.Errorf("failed to check if review exists: %w", err)
	}

	if !exist {
		return failure.NotFound("review") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
