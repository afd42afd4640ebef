package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"holdhive/config"
	"holdhive/infras/otel/mocks"
	reviewMocks "holdhive/internal/domains/review/mocks"
	"holdhive/internal/domains/review/model"
	"holdhive/internal/domains/review/model/dto"
	"holdhive/internal/domains/review/service"
	storageMocks "holdhive/internal/domains/storage/mocks"
	userMocks "holdhive/internal/domains/user/mocks"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/failure"
)

type reviewFixture struct {
	repo        *reviewMocks.MockReview
	storageRepo *storageMocks.MockStorage
	userRepo    *userMocks.MockUser
	svc         service.Review
}

func newReviewFixture(ctrl *gomock.Controller) *reviewFixture {
	f := &reviewFixture{
		repo:        reviewMocks.NewMockReview(ctrl),
		storageRepo: storageMocks.NewMockStorage(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
	}

	f.svc = service.New(f.repo, f.storageRepo, f.userRepo, &config.Config{}, mocks.NewOtel())

	return f
}

func TestReviewService_Create(t *testing.T) {
	req := dto.CreateReviewRequest{
		StorageID: "storage-id",
		UserID:    "user-id",
		Rating:    4,
		Comment:   "clean and dry",
	}

	tests := []struct {
		name      string
		setupMock func(f *reviewFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful upsert",
			setupMock: func(f *reviewFixture) {
				f.storageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "storage not found",
			setupMock: func(f *reviewFixture) {
				f.storageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "user not found",
			setupMock: func(f *reviewFixture) {
				f.storageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "upsert error",
			setupMock: func(f *reviewFixture) {
				f.storageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newReviewFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")
			err := f.svc.Create(ctx, req)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReviewService_GetByStorage(t *testing.T) {
	params := gDto.QueryParams{Limit: 10, Page: 1}

	t.Run("lists reviews with the average rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(ctrl)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		f.repo.EXPECT().
			GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ReviewDetail{
				{Review: model.Review{ID: "review-1", StorageID: "storage-id", Rating: 5}},
				{Review: model.Review{ID: "review-2", StorageID: "storage-id", Rating: 4}},
			}, nil)

		f.repo.EXPECT().
			AverageRating(gomock.Any(), "storage-id").
			Return(decimal.RequireFromString("4.5"), nil)

		res, err := f.svc.GetByStorage(context.Background(), params, "storage-id")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.True(t, res.AverageRating.Equal(decimal.RequireFromString("4.5")),
			"expected average 4.5, got %s", res.AverageRating.String())
	})

	t.Run("average rating error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(ctrl)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.repo.EXPECT().
			GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		f.repo.EXPECT().
			AverageRating(gomock.Any(), "storage-id").
			Return(decimal.Zero, errors.New("database error"))

		_, err := f.svc.GetByStorage(context.Background(), params, "storage-id")

		assert.Error(t, err)
	})
}

func TestReviewService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateReviewRequest
		setupMock func(f *reviewFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful update",
			req:  dto.UpdateReviewRequest{Rating: 3},
			setupMock: func(f *reviewFixture) {
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
			req:       dto.UpdateReviewRequest{},
			setupMock: func(*reviewFixture) {},
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "review not found",
			req:  dto.UpdateReviewRequest{Rating: 3},
			setupMock: func(f *reviewFixture) {
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

			f := newReviewFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")
			err := f.svc.Update(ctx, tt.req, "review-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReviewService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *reviewFixture)
		wantKind  failure.Kind
	}{
		{
			name: "successful deletion",
			setupMock: func(f *reviewFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "review not found",
			setupMock: func(f *reviewFixture) {
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

			f := newReviewFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "review-id")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}
