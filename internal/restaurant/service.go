package restaurant

import (
	"context"
	"time"

	"foodloop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateParams struct {
	Name       string
	Address    string
	Email      string
	Phone      string
	Categories []string
}

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (Restaurant, error)
	FindAll(ctx context.Context) ([]Restaurant, error)
	FindOne(ctx context.Context, id uuid.UUID) (Restaurant, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Restaurant, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, params UpdateParams) (Restaurant, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (Restaurant, error) {
	log := logger.FromCtx(ctx)

	rest, err := s.repo.Create(ctx, Restaurant{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       params.Name,
		Address:    params.Address,
		Email:      params.Email,
		Phone:      params.Phone,
		Categories: params.Categories,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		log.Error("failed to create restaurant", zap.Error(err))
		return Restaurant{}, err
	}

	log.Info("restaurant created",
		zap.String("restaurant_id", rest.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)
	return rest, nil
}

func (s *service) FindAll(ctx context.Context) ([]Restaurant, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) FindOne(ctx context.Context, id uuid.UUID) (Restaurant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Restaurant, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *service) Update(ctx context.Context, id, requesterID uuid.UUID, params UpdateParams) (Restaurant, error) {
	rest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Restaurant{}, err
	}
	if rest.OwnerID != requesterID {
		return Restaurant{}, ErrForbidden
	}
	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	rest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rest.OwnerID != requesterID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
