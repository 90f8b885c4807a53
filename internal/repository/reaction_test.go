package repository

import (
	"context"
	"testing"

	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionRepository_ToggleLikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	reader := createTestUser(t, db, "bob")
	post := createTestPost(t, db, author.ID, "liked-post", models.PostStatusPublished)

	liked, _, err := repo.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	isLiked, err := repo.IsLiked(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, isLiked)

	// Second toggle restores the initial state exactly.
	liked, _, err = repo.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var likeCount int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	assert.Equal(t, int64(0), likeCount)
}

func TestReactionRepository_LikeNotificationsAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	reader := createTestUser(t, db, "bob")
	post := createTestPost(t, db, author.ID, "noisy-post", models.PostStatusPublished)

	// Like, unlike, like again: two Like notifications, none removed.
	_, _, err := repo.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)

	var notifications []models.Notification
	require.NoError(t, db.Order("id ASC").Find(&notifications).Error)
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, author.ID, n.RecipientID)
		assert.Equal(t, reader.ID, n.ActorID)
		assert.Equal(t, models.NotificationLike, n.Type)
		require.NotNil(t, n.PostID)
		assert.Equal(t, post.ID, *n.PostID)
		assert.False(t, n.Seen)
	}
}

func TestReactionRepository_SelfLikeStillNotifies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "own-post", models.PostStatusPublished)

	_, _, err := repo.ToggleLike(ctx, author.ID, post.ID)
	require.NoError(t, err)

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	assert.Equal(t, author.ID, notification.RecipientID)
	assert.Equal(t, author.ID, notification.ActorID)
}

func TestReactionRepository_ToggleLikeMissingPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	reader := createTestUser(t, db, "bob")

	_, _, err := repo.ToggleLike(context.Background(), reader.ID, 9999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestReactionRepository_ToggleBookmarkRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	reader := createTestUser(t, db, "bob")
	post := createTestPost(t, db, author.ID, "saved-post", models.PostStatusPublished)

	bookmarked, _, err := repo.ToggleBookmark(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	assert.Equal(t, models.NotificationBookmark, notification.Type)

	bookmarked, _, err = repo.ToggleBookmark(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	isBookmarked, err := repo.IsBookmarked(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, isBookmarked)
}

func TestReactionRepository_ListBookmarked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	reader := createTestUser(t, db, "bob")
	first := createTestPost(t, db, author.ID, "first", models.PostStatusPublished)
	second := createTestPost(t, db, author.ID, "second", models.PostStatusPublished)
	draft := createTestPost(t, db, author.ID, "draft", models.PostStatusDraft)

	for _, p := range []*models.Post{first, second, draft} {
		_, _, err := repo.ToggleBookmark(ctx, reader.ID, p.ID)
		require.NoError(t, err)
	}

	posts, err := repo.ListBookmarked(ctx, reader.ID)
	require.NoError(t, err)
	// Drafts are bookmark-able in storage but never listed.
	require.Len(t, posts, 2)
	slugs := []string{posts[0].Slug, posts[1].Slug}
	assert.Contains(t, slugs, "first")
	assert.Contains(t, slugs, "second")
}
