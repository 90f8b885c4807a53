package repository

import (
	"context"
	"testing"

	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateNotifiesPostAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	reader := createTestUser(t, db, "bob")
	post := createTestPost(t, db, author.ID, "discussed", models.PostStatusPublished)

	readerID := reader.ID
	comment := &models.Comment{PostID: post.ID, UserID: &readerID, Content: "Great read"}
	mustCreateComment(t, repo, ctx, comment)
	assert.NotZero(t, comment.ID)
	assert.Nil(t, comment.ParentID)

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	assert.Equal(t, author.ID, notification.RecipientID)
	assert.Equal(t, reader.ID, notification.ActorID)
	assert.Equal(t, models.NotificationComment, notification.Type)
}

func TestCommentRepository_CreateOnDraftPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "draft", models.PostStatusDraft)

	authorID := author.ID
	_, err := repo.Create(context.Background(), &models.Comment{
		PostID: post.ID, UserID: &authorID, Content: "hello",
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestCommentRepository_CreateReplyInheritsPostAndNotifies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	commenter := createTestUser(t, db, "bob")
	replier := createTestUser(t, db, "carol")
	post := createTestPost(t, db, author.ID, "threaded", models.PostStatusPublished)

	commenterID := commenter.ID
	parent := &models.Comment{PostID: post.ID, UserID: &commenterID, Content: "First!"}
	mustCreateComment(t, repo, ctx, parent)

	replierID := replier.ID
	reply := &models.Comment{UserID: &replierID, Content: "Replying"}
	mustCreateReply(t, repo, ctx, reply, parent.ID)
	assert.Equal(t, post.ID, reply.PostID)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)

	// The reply notification goes to the parent comment's author.
	var notifications []models.Notification
	require.NoError(t, db.Order("id ASC").Find(&notifications).Error)
	require.Len(t, notifications, 2)
	assert.Equal(t, author.ID, notifications[0].RecipientID)
	assert.Equal(t, commenter.ID, notifications[1].RecipientID)
	assert.Equal(t, replier.ID, notifications[1].ActorID)
}

func TestCommentRepository_ReplyToReplyRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "shallow", models.PostStatusPublished)

	authorID := author.ID
	parent := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "top"}
	mustCreateComment(t, repo, ctx, parent)
	reply := &models.Comment{UserID: &authorID, Content: "reply"}
	mustCreateReply(t, repo, ctx, reply, parent.ID)

	_, err := repo.CreateReply(ctx, &models.Comment{UserID: &authorID, Content: "too deep"}, reply.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestCommentRepository_DeleteCascadeRemovesReplies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "pruned", models.PostStatusPublished)

	authorID := author.ID
	parent := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "top"}
	mustCreateComment(t, repo, ctx, parent)
	for i := 0; i < 3; i++ {
		mustCreateReply(t, repo, ctx, &models.Comment{UserID: &authorID, Content: "r"}, parent.ID)
	}
	other := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "unrelated"}
	mustCreateComment(t, repo, ctx, other)

	// Deleting the parent removes it plus its three replies.
	require.NoError(t, repo.DeleteCascade(ctx, parent.ID))

	var remaining []models.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)
}

func TestCommentRepository_DeleteReplyLeavesParent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "kept", models.PostStatusPublished)

	authorID := author.ID
	parent := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "top"}
	mustCreateComment(t, repo, ctx, parent)
	reply := &models.Comment{UserID: &authorID, Content: "r"}
	mustCreateReply(t, repo, ctx, reply, parent.ID)

	require.NoError(t, repo.DeleteCascade(ctx, reply.ID))

	var remaining []models.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, parent.ID, remaining[0].ID)
}

func TestCommentRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "ordered", models.PostStatusPublished)

	authorID := author.ID
	first := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "first"}
	mustCreateComment(t, repo, ctx, first)
	second := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "second"}
	mustCreateComment(t, repo, ctx, second)

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)

	// Replies come back newest first.
	r1 := &models.Comment{UserID: &authorID, Content: "older"}
	mustCreateReply(t, repo, ctx, r1, first.ID)
	r2 := &models.Comment{UserID: &authorID, Content: "newer"}
	mustCreateReply(t, repo, ctx, r2, first.ID)

	replies, err := repo.ListReplies(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r2.ID, replies[0].ID)
}

func TestCommentRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "edited", models.PostStatusPublished)

	authorID := author.ID
	comment := &models.Comment{PostID: post.ID, UserID: &authorID, Content: "typo"}
	mustCreateComment(t, repo, ctx, comment)

	updated, err := repo.Update(ctx, comment.ID, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "fixed", updated.Content)

	_, err = repo.Update(ctx, 9999, "ghost")
	require.Error(t, err)
}

func TestCommentRepository_ListByAuthorPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	mine := createTestPost(t, db, author.ID, "mine", models.PostStatusPublished)
	alsoMine := createTestPost(t, db, author.ID, "also-mine", models.PostStatusPublished)
	theirs := createTestPost(t, db, other.ID, "theirs", models.PostStatusPublished)

	otherID := other.ID
	first := &models.Comment{PostID: mine.ID, UserID: &otherID, Content: "first"}
	mustCreateComment(t, repo, ctx, first)
	second := &models.Comment{PostID: alsoMine.ID, UserID: &otherID, Content: "second"}
	mustCreateComment(t, repo, ctx, second)
	reply := &models.Comment{UserID: &otherID, Content: "a reply"}
	_, err := repo.CreateReply(ctx, reply, first.ID)
	require.NoError(t, err)
	elsewhere := &models.Comment{PostID: theirs.ID, UserID: &otherID, Content: "elsewhere"}
	mustCreateComment(t, repo, ctx, elsewhere)

	comments, err := repo.ListByAuthorPosts(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "a reply", comments[0].Content)
	for _, comment := range comments {
		assert.NotEqual(t, "elsewhere", comment.Content)
		require.NotNil(t, comment.Post)
	}

	comments, err = repo.ListByAuthorPosts(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
