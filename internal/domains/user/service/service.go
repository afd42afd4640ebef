package service

import (
	"context"
	"fmt"

	"holdhive/config"
	"holdhive/infras/kafka"
	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	paymentRepo "holdhive/internal/domains/payment/repository"
	rentalRepo "holdhive/internal/domains/rental/repository"
	reviewRepo "holdhive/internal/domains/review/repository"
	storageRepo "holdhive/internal/domains/storage/repository"
	"holdhive/internal/domains/user/model"
	"holdhive/internal/domains/user/model/dto"
	"holdhive/internal/domains/user/repository"
	"holdhive/shared"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/failure"
	"holdhive/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Promote(ctx context.Context, req dto.PromoteUserRequest) error
	Remove(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.User
	storageRepo storageRepo.Storage
	rentalRepo  rentalRepo.Rental
	paymentRepo paymentRepo.Payment
	reviewRepo  reviewRepo.Review
	tx          postgres.TxRunner
	broker      kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.User,
	storageRepo storageRepo.Storage,
	rentalRepo rentalRepo.Rental,
	paymentRepo paymentRepo.Payment,
	reviewRepo reviewRepo.Review,
	tx postgres.TxRunner,
	broker kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) User {
	return &serviceImpl{
		repo:        repo,
		storageRepo: storageRepo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		reviewRepo:  reviewRepo,
		tx:          tx,
		broker:      broker,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, shared.FilterByField(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered") //nolint:wrapcheck
	}

	account := req.ToModel(user)

	if err = s.repo.Insert(ctx, account); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	return s.Get(ctx, account.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
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
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Promote grants the admin role to the account registered under the given
// email.
func (s *serviceImpl) Promote(ctx context.Context, req dto.PromoteUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Promote")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByField(req.Email, model.FieldEmail, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldRoleID:        model.RoleIDAdmin,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to promote user")

		return fmt.Errorf("failed to promote user: %w", err)
	}

	return nil
}

// Remove deletes an account and everything that hangs off it. It refuses
// while the user still has running or future rentals on either side of the
// marketplace. The obligation checks and the cascade share one transaction:
// the user row and every owned storage row are locked first, so a booking
// cannot commit between the check and the final delete. The cascade runs in
// strict dependency order and a failure at any step leaves every row in
// place; the step name is surfaced on the error.
func (s *serviceImpl) Remove(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user") //nolint:wrapcheck
	}

	today := timezone.Today()

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		locked, txErr := s.repo.LockTx(ctx, sqltx, id)
		if txErr != nil {
			return fmt.Errorf("failed to lock user: %w", txErr)
		}

		if !locked {
			return failure.NotFound("user") //nolint:wrapcheck
		}

		if txErr = s.storageRepo.LockByOwnerTx(ctx, sqltx, id); txErr != nil {
			return fmt.Errorf("failed to lock owned storages: %w", txErr)
		}

		renting, txErr := s.rentalRepo.ExistActiveByRenterTx(ctx, sqltx, id, today)
		if txErr != nil {
			return fmt.Errorf("failed to check renter obligations: %w", txErr)
		}

		if renting {
			return failure.HasActiveObligations("user has active or future rentals") //nolint:wrapcheck
		}

		hosting, txErr := s.rentalRepo.ExistActiveByOwnerTx(ctx, sqltx, id, today)
		if txErr != nil {
			return fmt.Errorf("failed to check owner obligations: %w", txErr)
		}

		if hosting {
			return failure.HasActiveObligations("user's storages have active or future rentals") //nolint:wrapcheck
		}

		if stepErr := s.reviewRepo.DeleteByUserTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("authored reviews", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.reviewRepo.DeleteByOwnerTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("owned-storage reviews", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.paymentRepo.DeleteByRenterTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("renter payments", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.rentalRepo.DeleteByRenterTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("renter rentals", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.paymentRepo.DeleteByOwnerTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("owned-storage payments", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.rentalRepo.DeleteByOwnerTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("owned-storage rentals", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.storageRepo.DeleteByOwnerTx(ctx, sqltx, id); stepErr != nil {
			return failure.CascadePartialFailure("owned storages", stepErr) //nolint:wrapcheck
		}

		if stepErr := s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); stepErr != nil {
			return failure.CascadePartialFailure("user", stepErr) //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to remove user")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.UserRemovedEvent{
			UserID:    user.ID,
			Email:     user.Email,
			RemovedAt: timezone.Format(timezone.Now(), constant.DateFormat),
		}

		if pubErr := s.broker.SendMessages(c, s.cfg.Kafka.Topics.UserEvents, kafka.Message{
			Key:   user.ID,
			Value: event,
		}); pubErr != nil {
			log.Error().Err(pubErr).Msg("failed to publish user removed event")
		}
	}()

	return nil
}
