//go:build integration
// +build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	ratingerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/errors"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

// Integration tests for the rating transaction: the insert and the
// counter increments must land together or not at all, and the unique
// (user_id, movie_id) index must arbitrate duplicates.
//
// Prerequisites:
//   - Postgres running, DSN in TEST_DATABASE_DSN
//     (e.g. "host=localhost user=postgres password=postgres dbname=kinamax_test sslmode=disable")
//
// Run with: go test -tags=integration -v ./internal/domain/rating/repository/postgres/...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userentities.User{},
		&catalogentities.Movie{},
		&entities.Rating{},
	))

	t.Cleanup(func() {
		db.Exec("DELETE FROM ratings")
		db.Exec("DELETE FROM movies")
		db.Exec("DELETE FROM users")
	})

	return db
}

func seedMovie(t *testing.T, db *gorm.DB, code string) *catalogentities.Movie {
	t.Helper()
	movie := &catalogentities.Movie{Code: code, Title: "Test Movie", FileID: "file", IsActive: true}
	require.NoError(t, db.Create(movie).Error)
	return movie
}

func seedUser(t *testing.T, db *gorm.DB, tgID int64) *userentities.User {
	t.Helper()
	user := &userentities.User{TgID: tgID, FirstName: fmt.Sprintf("user-%d", tgID)}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreate_CountersMatchRatings_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	movie := seedMovie(t, db, "9001")
	const n = 5
	for i := int64(0); i < n; i++ {
		seedUser(t, db, 100+i)
		err := repo.Create(ctx, 100+i, &entities.Rating{MovieID: movie.ID, Kind: entities.KindLike})
		require.NoError(t, err)
	}

	var got catalogentities.Movie
	require.NoError(t, db.First(&got, movie.ID).Error)
	require.Equal(t, n, got.Likes)
	require.Equal(t, 0, got.Dislikes)

	var ratings int64
	require.NoError(t, db.Model(&entities.Rating{}).Where("movie_id = ?", movie.ID).Count(&ratings).Error)
	require.EqualValues(t, n, ratings)
}

func TestCreate_DuplicatePairRollsBack_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	movie := seedMovie(t, db, "9002")
	user := seedUser(t, db, 200)

	require.NoError(t, repo.Create(ctx, 200, &entities.Rating{MovieID: movie.ID, Kind: entities.KindLike}))

	err := repo.Create(ctx, 200, &entities.Rating{MovieID: movie.ID, Kind: entities.KindDislike})
	require.ErrorIs(t, err, ratingerrors.ErrAlreadyRated)

	// the losing transaction must leave every counter untouched
	var gotMovie catalogentities.Movie
	require.NoError(t, db.First(&gotMovie, movie.ID).Error)
	require.Equal(t, 1, gotMovie.Likes)
	require.Equal(t, 0, gotMovie.Dislikes)

	var gotUser userentities.User
	require.NoError(t, db.First(&gotUser, user.ID).Error)
	require.Equal(t, 1, gotUser.TotalRatings)
}

func TestCreate_DeletedMovie_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	movie := seedMovie(t, db, "9003")
	seedUser(t, db, 300)
	require.NoError(t, db.Delete(&catalogentities.Movie{}, movie.ID).Error)

	err := repo.Create(ctx, 300, &entities.Rating{MovieID: movie.ID, Kind: entities.KindLike})
	require.ErrorIs(t, err, ratingerrors.ErrMovieNotFound)
}
