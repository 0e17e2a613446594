package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/server/internal/events"
	"github.com/shareit-lab/shareit-service/server/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  events.Publisher

	// now is swappable so temporal bucket logic is testable
	now func() time.Time
}

func NewService(repo repository.Repository, pub events.Publisher, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		pub:  pub,
		now:  time.Now,
	}
}
