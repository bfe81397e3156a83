package business

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	catalogerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/errors"
)

// mockMovieRepository is a mock implementation of deps.MovieRepository
type mockMovieRepository struct {
	createFunc     func(ctx context.Context, movie *entities.Movie) error
	codeExistsFunc func(ctx context.Context, code string) (bool, error)
	listActiveFunc func(ctx context.Context, offset, limit int) ([]entities.Movie, int64, error)
}

func (m *mockMovieRepository) Create(ctx context.Context, movie *entities.Movie) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, movie)
	}
	movie.ID = 1
	return nil
}

func (m *mockMovieRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.codeExistsFunc != nil {
		return m.codeExistsFunc(ctx, code)
	}
	return false, nil
}

func (m *mockMovieRepository) FindActiveByCode(ctx context.Context, code string) (*entities.Movie, error) {
	return nil, catalogerrors.ErrMovieNotFound
}

func (m *mockMovieRepository) GetByID(ctx context.Context, id uint) (*entities.Movie, error) {
	return nil, catalogerrors.ErrMovieNotFound
}

func (m *mockMovieRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockMovieRepository) RecordView(ctx context.Context, id uint, viewerTgID int64) error {
	return nil
}

func (m *mockMovieRepository) ListActive(ctx context.Context, offset, limit int) ([]entities.Movie, int64, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockMovieRepository) TopByViews(ctx context.Context, limit int) ([]entities.Movie, error) {
	return nil, nil
}

func (m *mockMovieRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

// mockEventPublisher counts published movie events
type mockEventPublisher struct {
	created int
}

func (m *mockEventPublisher) MovieCreated(ctx context.Context, movieID uint, code, title string, createdBy int64) error {
	m.created++
	return nil
}

func newTestUseCase(repo deps.MovieRepository, events deps.EventPublisher) *UseCase {
	return NewUseCase(repo, events, 4, 10, zerolog.Nop())
}

func TestCreate_AssignsFixedLengthNumericCode(t *testing.T) {
	var captured *entities.Movie
	repo := &mockMovieRepository{
		createFunc: func(ctx context.Context, movie *entities.Movie) error {
			movie.ID = 7
			captured = movie
			return nil
		},
	}
	events := &mockEventPublisher{}
	uc := newTestUseCase(repo, events)

	movie, err := uc.Create(context.Background(), deps.NewMovie{
		Title:     "Test Movie",
		FileID:    "file-abc",
		CreatedBy: 42,
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	require.Len(t, movie.Code, 4)
	for _, r := range movie.Code {
		require.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", movie.Code)
	}
	require.True(t, movie.IsActive)
	require.Equal(t, int64(42), movie.CreatedBy)
	require.Equal(t, 1, events.created)
}

func TestCreate_RetriesWhenCodeRaceIsLost(t *testing.T) {
	attempts := 0
	repo := &mockMovieRepository{
		createFunc: func(ctx context.Context, movie *entities.Movie) error {
			attempts++
			if attempts < 3 {
				return catalogerrors.ErrCodeTaken
			}
			movie.ID = 1
			return nil
		},
	}
	uc := newTestUseCase(repo, &mockEventPublisher{})

	_, err := uc.Create(context.Background(), deps.NewMovie{Title: "Race", FileID: "f"})
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
}

func TestCreate_GivesUpAfterRetryBudget(t *testing.T) {
	repo := &mockMovieRepository{
		createFunc: func(ctx context.Context, movie *entities.Movie) error {
			return catalogerrors.ErrCodeTaken
		},
	}
	uc := newTestUseCase(repo, &mockEventPublisher{})

	_, err := uc.Create(context.Background(), deps.NewMovie{Title: "Race", FileID: "f"})
	require.ErrorIs(t, err, catalogerrors.ErrCodeSpaceExhausted)
}

func TestCreate_FailsWhenCodeSpaceExhausted(t *testing.T) {
	repo := &mockMovieRepository{
		codeExistsFunc: func(ctx context.Context, code string) (bool, error) {
			return true, nil
		},
	}
	uc := newTestUseCase(repo, &mockEventPublisher{})

	_, err := uc.Create(context.Background(), deps.NewMovie{Title: "Full", FileID: "f"})
	require.ErrorIs(t, err, catalogerrors.ErrCodeSpaceExhausted)
}

func TestCreate_PropagatesAllocationErrors(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &mockMovieRepository{
		codeExistsFunc: func(ctx context.Context, code string) (bool, error) {
			return false, dbErr
		},
	}
	uc := newTestUseCase(repo, &mockEventPublisher{})

	_, err := uc.Create(context.Background(), deps.NewMovie{Title: "Broken", FileID: "f"})
	require.ErrorIs(t, err, dbErr)
}

func TestListActive_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int64
		movies         []entities.Movie
		wantOffset     int
		wantPage       int
		wantTotalPages int
	}{
		{
			name:           "first page",
			page:           1,
			total:          25,
			movies:         make([]entities.Movie, 10),
			wantOffset:     0,
			wantPage:       1,
			wantTotalPages: 3,
		},
		{
			name:           "page below one is clamped",
			page:           0,
			total:          5,
			movies:         make([]entities.Movie, 5),
			wantOffset:     0,
			wantPage:       1,
			wantTotalPages: 1,
		},
		{
			name:           "page past the end is empty",
			page:           9,
			total:          11,
			movies:         nil,
			wantOffset:     80,
			wantPage:       9,
			wantTotalPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOffset int
			repo := &mockMovieRepository{
				listActiveFunc: func(ctx context.Context, offset, limit int) ([]entities.Movie, int64, error) {
					gotOffset = offset
					return tt.movies, tt.total, nil
				},
			}
			uc := newTestUseCase(repo, &mockEventPublisher{})

			page, err := uc.ListActive(context.Background(), tt.page)
			require.NoError(t, err)
			require.Equal(t, tt.wantOffset, gotOffset)
			require.Equal(t, tt.wantPage, page.Page)
			require.Equal(t, tt.wantTotalPages, page.TotalPages)
			require.Equal(t, tt.total, page.Total)
			require.Len(t, page.Movies, len(tt.movies))
		})
	}
}

func TestRandomCode_Length(t *testing.T) {
	for _, length := range []int{1, 4, 8} {
		code := randomCode(length)
		require.Len(t, code, length)
	}
}
