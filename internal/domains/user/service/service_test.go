package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"holdhive/config"
	kafkaInfra "holdhive/infras/kafka"
	kafkaMocks "holdhive/infras/kafka/mocks"
	"holdhive/infras/otel/mocks"
	txMocks "holdhive/infras/postgres/mocks"
	paymentMocks "holdhive/internal/domains/payment/mocks"
	rentalMocks "holdhive/internal/domains/rental/mocks"
	reviewMocks "holdhive/internal/domains/review/mocks"
	storageMocks "holdhive/internal/domains/storage/mocks"
	userMocks "holdhive/internal/domains/user/mocks"
	"holdhive/internal/domains/user/model"
	"holdhive/internal/domains/user/model/dto"
	"holdhive/internal/domains/user/service"
	"holdhive/shared/constant"
	"holdhive/shared/failure"
)

type userFixture struct {
	repo        *userMocks.MockUser
	storageRepo *storageMocks.MockStorage
	rentalRepo  *rentalMocks.MockRental
	paymentRepo *paymentMocks.MockPayment
	reviewRepo  *reviewMocks.MockReview
	tx          *txMocks.MockTxRunner
	broker      *kafkaMocks.MockClient
	published   chan struct{}
	svc         service.User
}

func newUserFixture(ctrl *gomock.Controller) *userFixture {
	f := &userFixture{
		repo:        userMocks.NewMockUser(ctrl),
		storageRepo: storageMocks.NewMockStorage(ctrl),
		rentalRepo:  rentalMocks.NewMockRental(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		reviewRepo:  reviewMocks.NewMockReview(ctrl),
		tx:          txMocks.NewMockTxRunner(ctrl),
		broker:      kafkaMocks.NewMockClient(ctrl),
		published:   make(chan struct{}, 1),
	}

	f.svc = service.New(
		f.repo, f.storageRepo, f.rentalRepo, f.paymentRepo, f.reviewRepo,
		f.tx, f.broker, &config.Config{}, mocks.NewOtel(),
	)

	return f
}

func (f *userFixture) expectTx() {
	f.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func (f *userFixture) expectPublish() {
	f.broker.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafkaInfra.Message) error {
			f.published <- struct{}{}

			return nil
		})
}

func (f *userFixture) waitPublished(t *testing.T) {
	t.Helper()

	select {
	case <-f.published:
	case <-time.After(time.Second):
		t.Fatal("expected a user event to be published")
	}
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Name:  "Jamie",
		Email: "jamie@example.com",
	}

	tests := []struct {
		name      string
		setupMock func(f *userFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful registration",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.repo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(model.UserDetail{
						User:     model.User{ID: "user-id", Name: "Jamie", Email: "jamie@example.com"},
						RoleName: model.RoleNameUser,
					}, nil)
			},
		},
		{
			name: "duplicate email rejected",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "exist check error",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newUserFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			res, err := f.svc.Create(ctx, req)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "jamie@example.com", res.Email)
		})
	}
}

func TestUserService_Promote(t *testing.T) {
	req := dto.PromoteUserRequest{Email: "jamie@example.com"}

	tests := []struct {
		name      string
		setupMock func(f *userFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful promotion sets the admin role",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.RoleIDAdmin, fields[model.FieldRoleID])

						return nil
					})
			},
		},
		{
			name: "unknown email",
			setupMock: func(f *userFixture) {
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

			f := newUserFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := f.svc.Promote(ctx, req)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Remove(t *testing.T) {
	existing := model.User{ID: "user-id", Email: "jamie@example.com"}

	tests := []struct {
		name      string
		setupMock func(f *userFixture)
		wantKind  failure.Kind
		wantWait  bool
	}{
		{
			name: "locks and checks precede the cascade in one transaction",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.expectTx()

				gomock.InOrder(
					f.repo.EXPECT().
						LockTx(gomock.Any(), gomock.Any(), "user-id").
						Return(true, nil),
					f.storageRepo.EXPECT().
						LockByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.rentalRepo.EXPECT().
						ExistActiveByRenterTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
						Return(false, nil),
					f.rentalRepo.EXPECT().
						ExistActiveByOwnerTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
						Return(false, nil),
					f.reviewRepo.EXPECT().
						DeleteByUserTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.reviewRepo.EXPECT().
						DeleteByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.paymentRepo.EXPECT().
						DeleteByRenterTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.rentalRepo.EXPECT().
						DeleteByRenterTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.paymentRepo.EXPECT().
						DeleteByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.rentalRepo.EXPECT().
						DeleteByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.storageRepo.EXPECT().
						DeleteByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
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
			name: "user not found",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "user vanished before the lock",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.expectTx()

				f.repo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "user-id").
					Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "rental committed before the locks blocks the removal",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.expectTx()

				gomock.InOrder(
					f.repo.EXPECT().
						LockTx(gomock.Any(), gomock.Any(), "user-id").
						Return(true, nil),
					f.storageRepo.EXPECT().
						LockByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
						Return(nil),
					f.rentalRepo.EXPECT().
						ExistActiveByRenterTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
						Return(true, nil),
				)
			},
			wantKind: failure.KindHasActiveObligations,
		},
		{
			name: "refused while hosting active rentals",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.expectTx()

				f.repo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "user-id").
					Return(true, nil)

				f.storageRepo.EXPECT().
					LockByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
					Return(nil)

				f.rentalRepo.EXPECT().
					ExistActiveByRenterTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
					Return(false, nil)

				f.rentalRepo.EXPECT().
					ExistActiveByOwnerTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
					Return(true, nil)
			},
			wantKind: failure.KindHasActiveObligations,
		},
		{
			name: "mid-cascade failure surfaces the step and stops",
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.expectTx()

				f.repo.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "user-id").
					Return(true, nil)

				f.storageRepo.EXPECT().
					LockByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
					Return(nil)

				f.rentalRepo.EXPECT().
					ExistActiveByRenterTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
					Return(false, nil)

				f.rentalRepo.EXPECT().
					ExistActiveByOwnerTx(gomock.Any(), gomock.Any(), "user-id", gomock.Any()).
					Return(false, nil)

				f.reviewRepo.EXPECT().
					DeleteByUserTx(gomock.Any(), gomock.Any(), "user-id").
					Return(nil)

				f.reviewRepo.EXPECT().
					DeleteByOwnerTx(gomock.Any(), gomock.Any(), "user-id").
					Return(nil)

				f.paymentRepo.EXPECT().
					DeleteByRenterTx(gomock.Any(), gomock.Any(), "user-id").
					Return(errors.New("connection reset"))
			},
			wantKind: failure.KindCascadePartialFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newUserFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.Remove(context.Background(), "user-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind),
					"expected kind %s, got %s", tt.wantKind, failure.GetKind(err))

				if tt.wantKind == failure.KindCascadePartialFailure {
					assert.Contains(t, err.Error(), "renter payments")
				}

				return
			}

			assert.NoError(t, err)

			if tt.wantWait {
				f.waitPublished(t)
			}
		})
	}
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(f *userFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful update",
			req:  dto.UpdateUserRequest{Name: "New Name"},
			setupMock: func(f *userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty update rejected",
			req:       dto.UpdateUserRequest{},
			setupMock: func(*userFixture) {},
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{Name: "New Name"},
			setupMock: func(f *userFixture) {
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

			f := newUserFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")
			err := f.svc.Update(ctx, tt.req, "user-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}
