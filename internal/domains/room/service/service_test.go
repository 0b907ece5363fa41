package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/service"
	"lodge/shared/failure"
)

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("returns the catalog", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(model.Catalog(), nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 3)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("catalog unavailable"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("known room", func(t *testing.T) {
		mockRepo.EXPECT().
			Find(gomock.Any(), 1).
			Return(model.Room{ID: 1, Name: "Standard Room", Price: "$100/night"}, true, nil)

		res, err := svc.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Standard Room", res.Name)
	})

	t.Run("unknown room", func(t *testing.T) {
		mockRepo.EXPECT().
			Find(gomock.Any(), 9).
			Return(model.Room{}, false, nil)

		_, err := svc.Get(context.Background(), 9)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
