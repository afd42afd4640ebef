package service

import (
	"context"
	"fmt"

	"holdhive/config"
	"holdhive/infras/kafka"
	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	"holdhive/internal/domains/payment/model"
	paymentRepo "holdhive/internal/domains/payment/repository"
	rentalModel "holdhive/internal/domains/rental/model"
	"holdhive/internal/domains/rental/model/dto"
	"holdhive/internal/domains/rental/pricing"
	"holdhive/internal/domains/rental/repository"
	storageModel "holdhive/internal/domains/storage/model"
	storageDto "holdhive/internal/domains/storage/model/dto"
	storageRepo "holdhive/internal/domains/storage/repository"
	"holdhive/shared"
	"holdhive/shared/constant"
	"holdhive/shared/daterange"
	gDto "holdhive/shared/dto"
	"holdhive/shared/failure"
	gModel "holdhive/shared/model"
	"holdhive/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Rental interface {
	Book(ctx context.Context, req dto.CreateRentalRequest) (dto.RentalResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRentalsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RentalDetailResponse, error)
	CheckAvailability(ctx context.Context, storageID, startDate, endDate string) (dto.AvailabilityResponse, error)
	Quote(ctx context.Context, storageID, startDate, endDate string) (dto.QuoteResponse, error)
	ListAvailable(ctx context.Context, params gDto.QueryParams, startDate, endDate string) (storageDto.GetStoragesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Rental
	storageRepo storageRepo.Storage
	paymentRepo paymentRepo.Payment
	tx          postgres.TxRunner
	broker      kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Rental,
	storageRepo storageRepo.Storage,
	paymentRepo paymentRepo.Payment,
	tx postgres.TxRunner,
	broker kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Rental {
	return &serviceImpl{
		repo:        repo,
		storageRepo: storageRepo,
		paymentRepo: paymentRepo,
		tx:          tx,
		broker:      broker,
		cfg:         cfg,
		otel:        otel,
	}
}

// Book admits a rental only if no existing rental for the storage touches
// the requested timeline. The check and the insert run inside one
// transaction behind a row lock on the storage, so two bookings racing for
// the same slot serialize and the loser sees the winner's row. The store's
// exclusion constraint backstops the same invariant against out-of-band
// writers.
func (s *serviceImpl) Book(ctx context.Context, req dto.CreateRentalRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rng, err := daterange.Parse(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	storage, err := s.storageRepo.Get(ctx, shared.FilterByID(req.StorageID, storageModel.FieldID, storageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get storage")

		return res, fmt.Errorf("failed to get storage: %w", err)
	}

	if storage.ID == constant.Empty {
		return res, failure.NotFound("storage") //nolint:wrapcheck
	}

	price, err := pricing.Total(storage.MonthlyRate, rng.Days())
	if err != nil {
		return res, err
	}

	rental := rentalModel.Rental{
		ID:         uuid.NewString(),
		StorageID:  req.StorageID,
		UserID:     req.UserID,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		TotalPrice: price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		locked, lockErr := s.storageRepo.LockTx(ctx, sqltx, req.StorageID)
		if lockErr != nil {
			return fmt.Errorf("failed to lock storage: %w", lockErr)
		}

		if !locked {
			return failure.NotFound("storage") //nolint:wrapcheck
		}

		overlapping, countErr := s.repo.CountOverlappingTx(ctx, sqltx, req.StorageID, rng)
		if countErr != nil {
			return fmt.Errorf("failed to count overlapping rentals: %w", countErr)
		}

		if overlapping > 0 {
			return failure.SlotUnavailable("storage is already rented for the given timeline") //nolint:wrapcheck
		}

		if insertErr := s.repo.InsertTx(ctx, sqltx, rental); insertErr != nil {
			return failure.FromStore(insertErr) //nolint:wrapcheck
		}

		payment := model.Payment{
			ID:       uuid.NewString(),
			RentalID: rental.ID,
			Amount:   price,
			Status:   model.StatusPaid,
			Metadata: rental.Metadata,
		}

		if insertErr := s.paymentRepo.InsertTx(ctx, sqltx, payment); insertErr != nil {
			return failure.FromStore(insertErr) //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("storage_id", req.StorageID).Msg("failed to book rental")

		return res, err
	}

	s.publish(ctx, dto.RentalEvent{
		Type:       dto.EventRentalCreated,
		RentalID:   rental.ID,
		StorageID:  rental.StorageID,
		UserID:     rental.UserID,
		StartDate:  rng.StartString(),
		EndDate:    rng.EndString(),
		TotalPrice: price,
	})

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRentalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rentals")

		return res, fmt.Errorf("failed to get rentals: %w", err)
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
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.repo.GetDetail(ctx, shared.FilterByID(id, rentalModel.FieldID, rentalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return res, fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return res, failure.NotFound("rental") //nolint:wrapcheck
	}

	res.FromModel(rental)

	return res, nil
}

// CheckAvailability answers the single-storage form of the availability
// question; it must agree with ListAvailable for the same timeline.
func (s *serviceImpl) CheckAvailability(ctx context.Context, storageID, startDate, endDate string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	rng, err := daterange.Parse(startDate, endDate)
	if err != nil {
		return res, err
	}

	storage, err := s.storageRepo.Get(ctx, shared.FilterByID(storageID, storageModel.FieldID, storageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get storage")

		return res, fmt.Errorf("failed to get storage: %w", err)
	}

	if storage.ID == constant.Empty {
		return res, failure.NotFound("storage") //nolint:wrapcheck
	}

	res.StorageID = storageID
	res.StartDate = rng.StartString()
	res.EndDate = rng.EndString()

	if storage.Availability != storageModel.AvailabilityAvailable {
		res.Available = false

		return res, nil
	}

	overlapping, err := s.repo.ExistOverlapping(ctx, storageID, rng)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping rentals")

		return res, fmt.Errorf("failed to check overlapping rentals: %w", err)
	}

	res.Available = !overlapping

	return res, nil
}

// Quote prices the timeline without reserving it. An unavailable slot gets
// no price at all rather than a price the caller cannot act on.
func (s *serviceImpl) Quote(ctx context.Context, storageID, startDate, endDate string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	availability, err := s.CheckAvailability(ctx, storageID, startDate, endDate)
	if err != nil {
		return res, err
	}

	res.StorageID = availability.StorageID
	res.StartDate = availability.StartDate
	res.EndDate = availability.EndDate
	res.Available = availability.Available

	if !availability.Available {
		return res, nil
	}

	storage, err := s.storageRepo.Get(ctx, shared.FilterByID(storageID, storageModel.FieldID, storageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get storage")

		return res, fmt.Errorf("failed to get storage: %w", err)
	}

	rng, err := daterange.Parse(startDate, endDate)
	if err != nil {
		return res, err
	}

	price, err := pricing.Total(storage.MonthlyRate, rng.Days())
	if err != nil {
		return res, err
	}

	res.Days = rng.Days()
	res.Price = price

	return res, nil
}

func (s *serviceImpl) ListAvailable(ctx context.Context, params gDto.QueryParams, startDate, endDate string) (res storageDto.GetStoragesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	rng, err := daterange.Parse(startDate, endDate)
	if err != nil {
		return res, err
	}

	total, err := s.storageRepo.CountAvailable(ctx, rng)
	if err != nil {
		log.Error().Err(err).Msg("failed to count available storages")

		return res, fmt.Errorf("failed to count available storages: %w", err)
	}

	models, err := s.storageRepo.GetAllAvailable(ctx, params, rng)
	if err != nil {
		log.Error().Err(err).Msg("failed to list available storages")

		return res, fmt.Errorf("failed to list available storages: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// Delete removes a rental and its payments in one transaction, payments
// first. There is no obligation check; cancelling a rental is always
// allowed.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.repo.Get(ctx, shared.FilterByID(id, rentalModel.FieldID, rentalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return failure.NotFound("rental") //nolint:wrapcheck
	}

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		if delErr := s.paymentRepo.DeleteByRentalTx(ctx, sqltx, id); delErr != nil {
			return fmt.Errorf("failed to delete payments: %w", delErr)
		}

		if delErr := s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, rentalModel.FieldID, rentalModel.TableName)); delErr != nil {
			return fmt.Errorf("failed to delete rental: %w", delErr)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("rental_id", id).Msg("failed to delete rental")

		return err
	}

	s.publish(ctx, dto.RentalEvent{
		Type:      dto.EventRentalDeleted,
		RentalID:  rental.ID,
		StorageID: rental.StorageID,
		UserID:    rental.UserID,
	})

	return nil
}

// publish sends a domain event without ever blocking or failing the
// workflow that produced it.
func (s *serviceImpl) publish(ctx context.Context, event dto.RentalEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.broker.SendMessages(c, s.cfg.Kafka.Topics.RentalEvents, kafka.Message{
			Key:   event.RentalID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish rental event")
		}
	}()
}
