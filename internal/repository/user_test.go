package repository

import (
	"context"
	"testing"

	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateProvisionsProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
		FullName: "Alice A",
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotNil(t, user.Profile)
	assert.Equal(t, user.ID, user.Profile.UserID)
	assert.Equal(t, models.DefaultBio, user.Profile.Bio)
	assert.Equal(t, "Alice A", user.Profile.FullName)

	var profileCount int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&profileCount).Error)
	assert.Equal(t, int64(1), profileCount)
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Username: "bob", Email: "bob@example.com", Password: "x",
	}))

	err := repo.Create(ctx, &models.User{
		Username: "bob", Email: "other@example.com", Password: "x",
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	// Failed registration must not leave a user or profile row behind.
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)
	var profileCount int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)
	assert.Equal(t, int64(1), profileCount)
}

func TestUserRepository_GetByEmailMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetProfileByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "carol")

	profile, err := repo.GetProfileByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBio, profile.Bio)

	_, err = repo.GetProfileByUsername(ctx, "nobody")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "dave")
	profile, err := repo.GetProfileByUsername(ctx, "dave")
	require.NoError(t, err)

	profile.Bio = "New bio"
	profile.Country = "Chile"
	require.NoError(t, repo.UpdateProfile(ctx, profile))

	updated, err := repo.GetProfileByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, "New bio", updated.Bio)
	assert.Equal(t, "Chile", updated.Country)
}
