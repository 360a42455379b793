package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/shared/utils"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 678_000_000, time.FixedZone("MSK", 3*60*60))
}

func TestUsersRepository_Create_StampsUTCMillis(t *testing.T) {
	repo := repository.NewUsersRepository(repository.WithClock(fixedNow))

	u, err := repo.Create(context.Background(), "Ann", "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, models.User{
		ID:        1,
		Name:      "Ann",
		Email:     "ann@x.com",
		CreatedAt: "2024-01-02T00:04:05.678Z",
	}, u)
}

func TestUsersRepository_UpdateKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUsersRepository(repository.WithClock(fixedNow))

	created, err := repo.Create(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)

	u, err := repo.Update(ctx, created.ID, models.UserPatch{Name: utils.Ptr("Anna")})
	require.NoError(t, err)
	require.Equal(t, "Anna", u.Name)
	require.Equal(t, "ann@x.com", u.Email)
	require.Equal(t, created.CreatedAt, u.CreatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestUsersRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUsersRepository()

	_, err := repo.GetByID(ctx, 1)
	require.True(t, errors.Is(err, serr.ErrNotFound))

	_, err = repo.Update(ctx, 1, models.UserPatch{Name: utils.Ptr("x")})
	require.ErrorIs(t, err, serr.ErrNotFound)

	err = repo.Delete(ctx, 1)
	require.ErrorIs(t, err, serr.ErrNotFound)
	require.Equal(t, "User not found", err.Error())
}

func TestUsersRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUsersRepository()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	_, _ = repo.Create(ctx, "A", "a@x.com")
	_, _ = repo.Create(ctx, "B", "b@x.com")
	require.NoError(t, repo.Delete(ctx, 1))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].ID)
}
