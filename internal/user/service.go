package user

import (
	"context"
	"strings"
	"time"

	"foodloop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SignupParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
}

type Service interface {
	Signup(ctx context.Context, params SignupParams) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(ctx context.Context, params SignupParams) (string, User, error) {
	log := logger.FromCtx(ctx)

	if !ValidRole(params.Role) {
		return "", User{}, ErrInvalidRole
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		ID:        uuid.New(),
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  hashed,
		Role:      params.Role,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID.String()), zap.Error(err))
		return "", User{}, err
	}

	log.Info("signup completed",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.FindByID(ctx, id)
}
