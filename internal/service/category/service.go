package category

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, tx txManager) *Service {
	return &Service{
		categories: categories,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}
