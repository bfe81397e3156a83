package business

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	catalogerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/errors"
)

// createRetries bounds how many times Create re-allocates after losing a
// code race to a concurrent creation.
const createRetries = 3

type UseCase struct {
	repo       deps.MovieRepository
	events     deps.EventPublisher
	codeLength int
	pageSize   int
	logger     zerolog.Logger
}

func NewUseCase(
	repo deps.MovieRepository,
	events deps.EventPublisher,
	codeLength int,
	pageSize int,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:       repo,
		events:     events,
		codeLength: codeLength,
		pageSize:   pageSize,
		logger:     logger,
	}
}

func (u *UseCase) Create(ctx context.Context, input deps.NewMovie) (*entities.Movie, error) {
	for attempt := 0; attempt < createRetries; attempt++ {
		code, err := u.allocateCode(ctx)
		if err != nil {
			u.logger.Error().Err(err).Msg("code allocation failed")
			return nil, err
		}

		movie := &entities.Movie{
			Code:             code,
			Title:            input.Title,
			Description:      input.Description,
			FileID:           input.FileID,
			ChannelMessageID: input.ChannelMessageID,
			IsActive:         true,
			CreatedBy:        input.CreatedBy,
		}

		err = u.repo.Create(ctx, movie)
		if errors.Is(err, catalogerrors.ErrCodeTaken) {
			u.logger.Warn().Str("code", code).Msg("code taken by concurrent creation, retrying")
			continue
		}
		if err != nil {
			u.logger.Error().Err(err).Str("code", code).Msg("failed to create movie")
			return nil, err
		}

		u.logger.Info().
			Str("code", movie.Code).
			Str("title", movie.Title).
			Int64("created_by", movie.CreatedBy).
			Msg("movie created")

		if err := u.events.MovieCreated(ctx, movie.ID, movie.Code, movie.Title, movie.CreatedBy); err != nil {
			u.logger.Warn().Err(err).Str("code", movie.Code).Msg("failed to publish movie created event")
		}

		return movie, nil
	}

	return nil, catalogerrors.ErrCodeSpaceExhausted
}

func (u *UseCase) FindByCode(ctx context.Context, code string) (*entities.Movie, error) {
	return u.repo.FindActiveByCode(ctx, code)
}

func (u *UseCase) GetByID(ctx context.Context, id uint) (*entities.Movie, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *UseCase) Delete(ctx context.Context, id uint) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, catalogerrors.ErrMovieNotFound) {
			u.logger.Error().Err(err).Uint("movie_id", id).Msg("failed to delete movie")
		}
		return err
	}

	u.logger.Info().Uint("movie_id", id).Msg("movie deleted")
	return nil
}

func (u *UseCase) RecordView(ctx context.Context, id uint, viewerTgID int64) error {
	if err := u.repo.RecordView(ctx, id, viewerTgID); err != nil {
		if !errors.Is(err, catalogerrors.ErrMovieNotFound) {
			u.logger.Error().Err(err).Uint("movie_id", id).Msg("failed to record view")
		}
		return err
	}
	return nil
}

// ListActive returns the requested 1-indexed page, newest first. Pages past
// the end come back empty, not as an error.
func (u *UseCase) ListActive(ctx context.Context, page int) (*entities.Page, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * u.pageSize
	movies, total, err := u.repo.ListActive(ctx, offset, u.pageSize)
	if err != nil {
		u.logger.Error().Err(err).Int("page", page).Msg("failed to list movies")
		return nil, err
	}

	totalPages := int((total + int64(u.pageSize) - 1) / int64(u.pageSize))

	return &entities.Page{
		Movies:     movies,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (u *UseCase) TopByViews(ctx context.Context, limit int) ([]entities.Movie, error) {
	return u.repo.TopByViews(ctx, limit)
}

func (u *UseCase) Count(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}
