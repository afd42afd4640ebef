package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"holdhive/config"
	"holdhive/infras/otel/mocks"
	txMocks "holdhive/infras/postgres/mocks"
	s3Mocks "holdhive/infras/s3/mocks"
	paymentMocks "holdhive/internal/domains/payment/mocks"
	rentalMocks "holdhive/internal/domains/rental/mocks"
	reviewMocks "holdhive/internal/domains/review/mocks"
	storageMocks "holdhive/internal/domains/storage/mocks"
	"holdhive/internal/domains/storage/model"
	"holdhive/internal/domains/storage/model/dto"
	"holdhive/internal/domains/storage/service"
	"holdhive/shared/constant"
	"holdhive/shared/failure"
)

type storageFixture struct {
	repo        *storageMocks.MockStorage
	rentalRepo  *rentalMocks.MockRental
	paymentRepo *paymentMocks.MockPayment
	reviewRepo  *reviewMocks.MockReview
	tx          *txMocks.MockTxRunner
	media       *s3Mocks.MockS3
	svc         service.Storage
}

func newStorageFixture(ctrl *gomock.Controller) *storageFixture {
	f := &storageFixture{
		repo:        storageMocks.NewMockStorage(ctrl),
		rentalRepo:  rentalMocks.NewMockRental(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		reviewRepo:  reviewMocks.NewMockReview(ctrl),
		tx:          txMocks.NewMockTxRunner(ctrl),
		media:       s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(
		f.repo, f.rentalRepo, f.paymentRepo, f.reviewRepo,
		f.tx, f.media, &config.Config{}, mocks.NewOtel(),
	)

	return f
}

func (f *storageFixture) expectTx() {
	f.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestStorageService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateStorageRequest
		setupMock func(f *storageFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			req: dto.CreateStorageRequest{
				OwnerID:     "owner-id",
				Name:        "Garage Unit",
				Location:    "Springfield",
				Size:        "3x4",
				MonthlyRate: decimal.NewFromInt(300),
			},
			setupMock: func(f *storageFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "zero rate rejected",
			req: dto.CreateStorageRequest{
				OwnerID:     "owner-id",
				Name:        "Garage Unit",
				Location:    "Springfield",
				Size:        "3x4",
				MonthlyRate: decimal.Zero,
			},
			setupMock: func(*storageFixture) {},
			wantKind:  failure.KindInvalidRate,
		},
		{
			name: "negative rate rejected",
			req: dto.CreateStorageRequest{
				OwnerID:     "owner-id",
				Name:        "Garage Unit",
				Location:    "Springfield",
				Size:        "3x4",
				MonthlyRate: decimal.NewFromInt(-50),
			},
			setupMock: func(*storageFixture) {},
			wantKind:  failure.KindInvalidRate,
		},
		{
			name: "repository error",
			req: dto.CreateStorageRequest{
				OwnerID:     "owner-id",
				Name:        "Garage Unit",
				Location:    "Springfield",
				Size:        "3x4",
				MonthlyRate: decimal.NewFromInt(300),
			},
			setupMock: func(f *storageFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newStorageFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-id")
			res, err := f.svc.Create(ctx, tt.req)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
			assert.Equal(t, model.AvailabilityAvailable, res.Availability)
		})
	}
}

func TestStorageService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateStorageRequest
		setupMock func(f *storageFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful update",
			req:  dto.UpdateStorageRequest{Name: "Bigger Garage"},
			setupMock: func(f *storageFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "negative rate rejected",
			req:       dto.UpdateStorageRequest{MonthlyRate: decimal.NewFromInt(-10)},
			setupMock: func(*storageFixture) {},
			wantKind:  failure.KindInvalidRate,
		},
		{
			name: "storage not found",
			req:  dto.UpdateStorageRequest{Name: "Bigger Garage"},
			setupMock: func(f *storageFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newStorageFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-id")
			err := f.svc.Update(ctx, tt.req, "storage-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestStorageService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *storageFixture)
		wantKind  failure.Kind
	}{
		{
			name: "lock and check precede the prune in one transaction",
			setupMock: func(f *storageFixture) {
				f.expectTx()

				gomock.InOrder(
					f.repo.EXPECT().
						LockTx(gomock.Any(), gomock.Any(), "storage-id").
						Return(true, nil),
					f.rentalRepo.EXPECT().
						ExistActiveByStorageTx(gomock.Any(), gomock.Any(), "storage-id", gomock.Any()).
						Return(false, nil),
					f.reviewRepo.EXPECT().
						DeleteByStorageTx(gomock.Any(), gomock.Any(), "storage-id").
						Return(nil),
					f.paymentRepo.EXPECT().
						DeleteByStorageTx(gomock.Any(), gomock.Any(), "storage-id").
						Return(nil),
					f.rentalRepo.EXPECT().
						DeleteByStorageTx(gomock.Any(), gomock.Any(), "storage-id").
						Return(nil),
					f.repo.EXPECT().
						DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil),
				)
			},
		},
		{
			name: "storage not found",
			setupMock: func(f *storageFixture) {
				f.expectTx()

				f.repo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "rental admitted before the lock blocks the delete",
			setupMock: func(f *storageFixture) {
				f.expectTx()

				gomock.InOrder(
					f.repo.EXPECT().
						LockTx(gomock.Any(), gomock.Any(), "storage-id").
						Return(true, nil),
					f.rentalRepo.EXPECT().
						ExistActiveByStorageTx(gomock.Any(), gomock.Any(), "storage-id", gomock.Any()).
						Return(true, nil),
				)
			},
			wantKind: failure.KindHasActiveObligations,
		},
		{
			name: "mid-cascade failure names the step",
			setupMock: func(f *storageFixture) {
				f.expectTx()

				f.repo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(true, nil)

				f.rentalRepo.EXPECT().
					ExistActiveByStorageTx(gomock.Any(), gomock.Any(), "storage-id", gomock.Any()).
					Return(false, nil)

				f.reviewRepo.EXPECT().
					DeleteByStorageTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(nil)

				f.paymentRepo.EXPECT().
					DeleteByStorageTx(gomock.Any(), gomock.Any(), "storage-id").
					Return(errors.New("connection reset"))
			},
			wantKind: failure.KindCascadePartialFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newStorageFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "storage-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind),
					"expected kind %s, got %s", tt.wantKind, failure.GetKind(err))

				if tt.wantKind == failure.KindCascadePartialFailure {
					assert.Contains(t, err.Error(), "payments")
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
