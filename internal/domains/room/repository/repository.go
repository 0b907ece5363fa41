package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	Find(ctx context.Context, id int) (model.Room, bool, error)
}

type repositoryImpl struct {
	catalog []model.Room
	otel    otel.Otel
}

func New(ot otel.Otel) Room {
	return &repositoryImpl{
		catalog: model.Catalog(),
		otel:    ot,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	rooms := make([]model.Room, len(repo.catalog))
	copy(rooms, repo.catalog)

	return rooms, nil
}

func (repo *repositoryImpl) Find(ctx context.Context, id int) (model.Room, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Find")
	defer scope.End()

	scope.SetAttribute("room.id", id)

	for _, room := range repo.catalog {
		if room.ID == id {
			return room, true, nil
		}
	}

	return model.Room{}, false, nil
}
