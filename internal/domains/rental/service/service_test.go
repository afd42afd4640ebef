package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"holdhive/config"
	kafkaInfra "holdhive/infras/kafka"
	kafkaMocks "holdhive/infras/kafka/mocks"
	"holdhive/infras/otel/mocks"
	txMocks "holdhive/infras/postgres/mocks"
	paymentMocks "holdhive/internal/domains/payment/mocks"
	rentalMocks "holdhive/internal/domains/rental/mocks"
	rentalModel "holdhive/internal/domains/rental/model"
	"holdhive/internal/domains/rental/model/dto"
	"holdhive/internal/domains/rental/service"
	storageMocks "holdhive/internal/domains/storage/mocks"
	storageModel "holdhive/internal/domains/storage/model"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/failure"
)

type rentalFixture struct {
	repo        *rentalMocks.MockRental
	storageRepo *storageMocks.MockStorage
	paymentRepo *paymentMocks.MockPayment
	tx          *txMocks.MockTxRunner
	broker      *kafkaMocks.MockClient
	published   chan struct{}
	svc         service.Rental
}

func newRentalFixture(ctrl *gomock.Controller) *rentalFixture {
	f := &rentalFixture{
		repo:        rentalMocks.NewMockRental(ctrl),
		storageRepo: storageMocks.NewMockStorage(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		tx:          txMocks.NewMockTxRunner(ctrl),
		broker:      kafkaMocks.NewMockClient(ctrl),
		published:   make(chan struct{}, 1),
	}

	f.svc = service.New(f.repo, f.storageRepo, f.paymentRepo, f.tx, f.broker, &config.Config{}, mocks.NewOtel())

	return f
}

// expectTx runs the transaction closure against a nil tx handle; the inner
// repository calls are mocked so the handle is never dereferenced.
func (f *rentalFixture) expectTx() {
	f.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

// expectPublish acknowledges the fire-and-forget event so the test can wait
// for the goroutine instead of racing the mock controller.
func (f *rentalFixture) expectPublish() {
	f.broker.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafkaInfra.Message) error {
			f.published <- struct{}{}

			return nil
		})
}

func (f *rentalFixture) waitPublished(t *testing.T) {
	t.Helper()

	select {
	case <-f.published:
	case <-time.After(time.Second):
		t.Fatal("expected a rental event to be published")
	}
}

func availableStorage() storageModel.StorageSpace {
	return storageModel.StorageSpace{
		ID:           "storage-id",
		OwnerID:      "owner-id",
		Name:         "Garage Unit",
		MonthlyRate:  decimal.NewFromInt(300),
		Availability: storageModel.AvailabilityAvailable,
	}
}

func TestRentalService_Book(t *testing.T) {
	req := dto.CreateRentalRequest{
		StorageID: "storage-id",
		UserID:    "renter-id",
		StartDate: "2025-01-20",
		EndDate:   "2025-01-29",
	}

	tests := []struct {
		name      string
		req       dto.CreateRentalRequest
		setupMock func(f *rentalFixture)
		wantKind  failure.Kind
		wantWait  bool
		wantPrice string
	}{
		{
			name: "successful booking pays the monthly floor",
			req:  req,
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableStorage(), nil)

				f.expectTx()

				f.storageRepo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(true, nil)

				f.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), "storage-id", gomock.Any()).
					Return(0, nil)

				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.paymentRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.expectPublish()
			},
			wantWait:  true,
			wantPrice: "300",
		},
		{
			name: "inverted range rejected before touching the store",
			req: dto.CreateRentalRequest{
				StorageID: "storage-id",
				UserID:    "renter-id",
				StartDate: "2025-01-29",
				EndDate:   "2025-01-20",
			},
			setupMock: func(*rentalFixture) {},
			wantKind:  failure.KindInvalidRange,
		},
		{
			name: "storage not found",
			req:  req,
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storageModel.StorageSpace{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "overlapping rental loses the slot",
			req:  req,
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableStorage(), nil)

				f.expectTx()

				f.storageRepo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(true, nil)

				f.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), "storage-id", gomock.Any()).
					Return(1, nil)
			},
			wantKind: failure.KindSlotUnavailable,
		},
		{
			name: "storage vanished before the lock",
			req:  req,
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableStorage(), nil)

				f.expectTx()

				f.storageRepo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "exclusion constraint backstop reads as slot taken",
			req:  req,
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableStorage(), nil)

				f.expectTx()

				f.storageRepo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(true, nil)

				f.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), "storage-id", gomock.Any()).
					Return(0, nil)

				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23P01"})
			},
			wantKind: failure.KindSlotUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newRentalFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "renter-id")
			res, err := f.svc.Book(ctx, tt.req)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind),
					"expected kind %s, got %s", tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.StorageID, res.StorageID)
			assert.True(t, res.TotalPrice.Equal(decimal.RequireFromString(tt.wantPrice)),
				"expected price %s, got %s", tt.wantPrice, res.TotalPrice.String())

			if tt.wantWait {
				f.waitPublished(t)
			}
		})
	}
}

func TestRentalService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(f *rentalFixture)
		wantKind      failure.Kind
		wantAvailable bool
	}{
		{
			name: "free timeline",
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableStorage(), nil)

				f.repo.EXPECT().
					ExistOverlapping(gomock.Any(), "storage-id", gomock.Any()).
					Return(false, nil)
			},
			wantAvailable: true,
		},
		{
			name: "overlapping rental blocks the timeline",
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableStorage(), nil)

				f.repo.EXPECT().
					ExistOverlapping(gomock.Any(), "storage-id", gomock.Any()).
					Return(true, nil)
			},
			wantAvailable: false,
		},
		{
			name: "listing marked unavailable skips the overlap check",
			setupMock: func(f *rentalFixture) {
				unavailable := availableStorage()
				unavailable.Availability = storageModel.AvailabilityUnavailable

				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unavailable, nil)
			},
			wantAvailable: false,
		},
		{
			name: "storage not found",
			setupMock: func(f *rentalFixture) {
				f.storageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storageModel.StorageSpace{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newRentalFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.CheckAvailability(context.Background(), "storage-id", "2025-01-20", "2025-01-29")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, "2025-01-20", res.StartDate)
			assert.Equal(t, "2025-01-29", res.EndDate)
		})
	}
}

func TestRentalService_Quote(t *testing.T) {
	t.Run("available timeline gets days and price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRentalFixture(ctrl)

		f.storageRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableStorage(), nil).
			Times(2)

		f.repo.EXPECT().
			ExistOverlapping(gomock.Any(), "storage-id", gomock.Any()).
			Return(false, nil)

		res, err := f.svc.Quote(context.Background(), "storage-id", "2025-01-01", "2025-02-14")

		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, 45, res.Days)
		assert.True(t, res.Price.Equal(decimal.NewFromInt(450)),
			"expected price 450, got %s", res.Price.String())
	})

	t.Run("unavailable timeline gets no price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRentalFixture(ctrl)

		f.storageRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableStorage(), nil)

		f.repo.EXPECT().
			ExistOverlapping(gomock.Any(), "storage-id", gomock.Any()).
			Return(true, nil)

		res, err := f.svc.Quote(context.Background(), "storage-id", "2025-01-01", "2025-02-14")

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Zero(t, res.Days)
		assert.True(t, res.Price.IsZero())
	})
}

func TestRentalService_ListAvailable(t *testing.T) {
	t.Run("totals reflect the full match set, not the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRentalFixture(ctrl)

		f.storageRepo.EXPECT().
			CountAvailable(gomock.Any(), gomock.Any()).
			Return(25, nil)

		f.storageRepo.EXPECT().
			GetAllAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]storageModel.StorageSpace{availableStorage()}, nil)

		params := gDto.QueryParams{Page: 1, Limit: 10}
		res, err := f.svc.ListAvailable(context.Background(), params, "2025-01-20", "2025-01-29")

		assert.NoError(t, err)
		assert.Len(t, res.Storages, 1)
		assert.Equal(t, 25, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
	})

	t.Run("malformed range rejected before touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newRentalFixture(ctrl)

		_, err := f.svc.ListAvailable(context.Background(), gDto.QueryParams{}, "2025-01-29", "2025-01-20")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidRange))
	})
}

func TestRentalService_Delete(t *testing.T) {
	rental := rentalModel.Rental{
		ID:        "rental-id",
		StorageID: "storage-id",
		UserID:    "renter-id",
	}

	tests := []struct {
		name      string
		setupMock func(f *rentalFixture)
		wantKind  failure.Kind
		wantWait  bool
	}{
		{
			name: "payments removed before the rental",
			setupMock: func(f *rentalFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rental, nil)

				f.expectTx()

				gomock.InOrder(
					f.paymentRepo.EXPECT().
						DeleteByRentalTx(gomock.Any(), gomock.Any(), "rental-id").
						Return(nil),
					f.repo.EXPECT().
						DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil),
				)

				f.expectPublish()
			},
			wantWait: true,
		},
		{
			name: "rental not found",
			setupMock: func(f *rentalFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rentalModel.Rental{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "payment step failure aborts the rental delete",
			setupMock: func(f *rentalFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rental, nil)

				f.expectTx()

				f.paymentRepo.EXPECT().
					DeleteByRentalTx(gomock.Any(), gomock.Any(), "rental-id").
					Return(errors.New("delete failed"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newRentalFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "rental-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)

			if tt.wantWait {
				f.waitPublished(t)
			}
		})
	}
}
