package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	"github.com/spec-kit/helpdesk-dashboard/internal/service/mocks"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

func newTicketService(repo *mocks.MockTicketRepository, comments config.CommentsConfig) *TicketService {
	return NewTicketService(repo, nil, comments, zap.NewNop())
}

func TestSanitizeComments(t *testing.T) {
	t.Run("commas become semicolons", func(t *testing.T) {
		got := sanitizeComments([]string{"escalated, waiting on vendor"})
		assert.Equal(t, []string{"escalated; waiting on vendor"}, got)
	})

	t.Run("blank and whitespace entries dropped", func(t *testing.T) {
		got := sanitizeComments([]string{"  first  ", "", "   ", "second"})
		assert.Equal(t, []string{"first", "second"}, got)
	})

	t.Run("sanitized entries survive a split round trip", func(t *testing.T) {
		sanitized := sanitizeComments([]string{"a, b, c", "plain"})
		joined := "prior," + sanitized[0] + "," + sanitized[1]
		assert.Equal(t, []string{"prior", "a; b; c", "plain"}, splitLog(joined))
	})
}

func TestComments(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes stored log", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			GetCommentLogFunc: func(ctx context.Context, ticketNo string) (string, error) {
				return " first ,, second ,", nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		log, err := svc.Comments(ctx, "T-1")
		assert.NoError(t, err)
		assert.Equal(t, "first,second", log)
	})

	t.Run("empty log is not an error", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			GetCommentLogFunc: func(ctx context.Context, ticketNo string) (string, error) {
				return "", nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		log, err := svc.Comments(ctx, "T-1")
		assert.NoError(t, err)
		assert.Equal(t, "", log)
	})

	t.Run("missing ticket maps to not found", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			GetCommentLogFunc: func(ctx context.Context, ticketNo string) (string, error) {
				return "", pgx.ErrNoRows
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		_, err := svc.Comments(ctx, "T-404")
		var domainErr *apperrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, 404, domainErr.HTTPStatus)
	})
}

func TestAppendComments(t *testing.T) {
	ctx := context.Background()
	ref := repository.CommentRef{
		CompanyID:    "C-1",
		CompanyEmail: "ops@acme.test",
		TicketNo:     "T-1",
		UniqueID:     "42",
	}

	t.Run("appends all comments to a non-empty log", func(t *testing.T) {
		var saved string
		repo := &mocks.MockTicketRepository{
			FindCommentTargetFunc: func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
				return &repository.CommentTarget{ID: 42, Log: "existing"}, nil
			},
			UpdateCommentLogFunc: func(ctx context.Context, id int64, log string) error {
				assert.Equal(t, int64(42), id)
				saved = log
				return nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		updated, added, err := svc.AppendComments(ctx, ref, []string{"one", "two"})
		assert.NoError(t, err)
		assert.Equal(t, "existing,one,two", updated)
		assert.Equal(t, []string{"one", "two"}, added)
		assert.Equal(t, updated, saved)
	})

	t.Run("empty log keeps only the first new comment", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			FindCommentTargetFunc: func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
				return &repository.CommentTarget{ID: 42, Log: ""}, nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		updated, _, err := svc.AppendComments(ctx, ref, []string{"one", "two"})
		assert.NoError(t, err)
		assert.Equal(t, "one", updated)
	})

	t.Run("rejects input with no usable comments", func(t *testing.T) {
		called := false
		repo := &mocks.MockTicketRepository{
			FindCommentTargetFunc: func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
				called = true
				return nil, nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		_, _, err := svc.AppendComments(ctx, ref, []string{"", "   "})
		var domainErr *apperrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		assert.False(t, called)
	})

	t.Run("missing target maps to not found", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			FindCommentTargetFunc: func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		_, _, err := svc.AppendComments(ctx, ref, []string{"one"})
		var domainErr *apperrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, 404, domainErr.HTTPStatus)
	})

	t.Run("fallback setting is passed through to the lookup", func(t *testing.T) {
		var seen bool
		repo := &mocks.MockTicketRepository{
			FindCommentTargetFunc: func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
				seen = allowUnscoped
				return &repository.CommentTarget{ID: 1, Log: "x"}, nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{AllowUnscopedFallback: true})

		_, _, err := svc.AppendComments(ctx, ref, []string{"one"})
		assert.NoError(t, err)
		assert.True(t, seen)
	})

	t.Run("degraded match still appends", func(t *testing.T) {
		updated := false
		repo := &mocks.MockTicketRepository{
			FindCommentTargetFunc: func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
				return &repository.CommentTarget{ID: 7, Log: "old", Degraded: true, CompanyID: "C-9"}, nil
			},
			UpdateCommentLogFunc: func(ctx context.Context, id int64, log string) error {
				updated = true
				return nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{AllowUnscopedFallback: true})

		_, _, err := svc.AppendComments(ctx, ref, []string{"one"})
		assert.NoError(t, err)
		assert.True(t, updated)
	})
}

func TestReferenceLists(t *testing.T) {
	ctx := context.Background()

	t.Run("falls through to repository when cache is unavailable", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			DistinctDatesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"2025-01-01", "2025-01-02"}, nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		dates, err := svc.DistinctDates(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, dates)
	})

	t.Run("options are numbered from one", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			DistinctProductsFunc: func(ctx context.Context) ([]string, error) {
				return []string{"Gateway", "Portal"}, nil
			},
		}
		svc := newTicketService(repo, config.CommentsConfig{})

		options, err := svc.ProductOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []Option{{ID: 1, Name: "Gateway"}, {ID: 2, Name: "Portal"}}, options)
	})
}
