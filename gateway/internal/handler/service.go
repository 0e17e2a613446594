package handler

import (
	"context"

	"github.com/shareit-lab/shareit-service/gateway/internal/service/shareit"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ShareItClient interface {
	Forward(ctx context.Context, req shareit.ForwardRequest) ([]byte, int, error)
}

var _ ShareItClient = (*shareit.Service)(nil)
