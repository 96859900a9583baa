package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/service/mocks"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 30}

	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	assert.NoError(t, err)

	employee := &domain.Employee{
		ID:           "E-1",
		Name:         "Jordan",
		Email:        "jordan@acme.test",
		Role:         "Agent",
		PasswordHash: hash,
	}

	t.Run("valid credentials issue a token with identity claims", func(t *testing.T) {
		repo := &mocks.MockEmployeeRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Employee, error) {
				assert.Equal(t, "jordan@acme.test", email)
				return employee, nil
			},
		}
		svc := NewAuthService(cfg, repo)

		emp, token, exp, err := svc.Login(ctx, "jordan@acme.test", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "E-1", emp.ID)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, time.Minute)

		claims, err := svc.TokenManager().ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "E-1", claims.EmployeeID)
		assert.Equal(t, "Agent", claims.Role)
	})

	t.Run("password is trimmed before comparison", func(t *testing.T) {
		repo := &mocks.MockEmployeeRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Employee, error) {
				return employee, nil
			},
		}
		svc := NewAuthService(cfg, repo)

		_, token, _, err := svc.Login(ctx, "jordan@acme.test", "  s3cret  ")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is unauthorized without a token", func(t *testing.T) {
		repo := &mocks.MockEmployeeRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Employee, error) {
				return employee, nil
			},
		}
		svc := NewAuthService(cfg, repo)

		_, token, _, err := svc.Login(ctx, "jordan@acme.test", "nope")
		var domainErr *apperrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, 401, domainErr.HTTPStatus)
		assert.Empty(t, token)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		repo := &mocks.MockEmployeeRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Employee, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := NewAuthService(cfg, repo)

		_, _, _, err := svc.Login(ctx, "ghost@acme.test", "s3cret")
		var domainErr *apperrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}
