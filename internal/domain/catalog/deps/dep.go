package deps

import (
	"context"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
)

type MovieRepository interface {
	// Create persists a new movie; a code collision with a concurrent
	// creation surfaces as ErrCodeTaken.
	Create(ctx context.Context, movie *entities.Movie) error
	CodeExists(ctx context.Context, code string) (bool, error)
	FindActiveByCode(ctx context.Context, code string) (*entities.Movie, error)
	GetByID(ctx context.Context, id uint) (*entities.Movie, error)
	// Delete hard-deletes the movie; ratings cascade in the store.
	Delete(ctx context.Context, id uint) error
	// RecordView bumps the movie view counter and the viewer's
	// watched counter in one transaction.
	RecordView(ctx context.Context, id uint, viewerTgID int64) error
	ListActive(ctx context.Context, offset, limit int) ([]entities.Movie, int64, error)
	TopByViews(ctx context.Context, limit int) ([]entities.Movie, error)
	Count(ctx context.Context) (int64, error)
}

type EventPublisher interface {
	MovieCreated(ctx context.Context, movieID uint, code, title string, createdBy int64) error
}

type NewMovie struct {
	Title            string
	Description      string
	FileID           string
	ChannelMessageID int
	CreatedBy        int64
}

type CatalogUseCase interface {
	Create(ctx context.Context, input NewMovie) (*entities.Movie, error)
	FindByCode(ctx context.Context, code string) (*entities.Movie, error)
	GetByID(ctx context.Context, id uint) (*entities.Movie, error)
	Delete(ctx context.Context, id uint) error
	RecordView(ctx context.Context, id uint, viewerTgID int64) error
	ListActive(ctx context.Context, page int) (*entities.Page, error)
	TopByViews(ctx context.Context, limit int) ([]entities.Movie, error)
	Count(ctx context.Context) (int64, error)
}
