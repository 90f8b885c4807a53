package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Jobserd12/medium-back/internal/cache"
	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetByIDForAuthor(ctx context.Context, id, authorID uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	ListPopular(ctx context.Context, limit int) ([]*models.Post, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id, authorID uint) error
	IncrementView(ctx context.Context, slug string) error
	AuthorStats(ctx context.Context, authorID uint) (*models.AuthorStats, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails adds subqueries to fetch engagement counts in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count, " +
		"(SELECT COUNT(*) FROM bookmarks WHERE bookmarks.post_id = posts.id) as bookmarks_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count")
}

// popularityOrder ranks posts by the weighted engagement score. The full
// subquery expression is repeated because ORDER BY cannot reference the
// SELECT aliases inside an arithmetic expression on PostgreSQL.
const popularityOrder = "(0.5 * (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) + " +
	"0.3 * posts.views + " +
	"0.2 * (SELECT COUNT(*) FROM bookmarks WHERE bookmarks.post_id = posts.id)) DESC"

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Post slug already exists")
		}
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PopularPostsKey)
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// GetBySlug returns a published post with engagement counts, author profile,
// and category. Drafts and archived posts are not visible here.
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(slug)

	err := cache.CacheAside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx)).
			Preload("User").
			Preload("User.Profile").
			Preload("Category").
			Where("slug = ? AND status = ?", slug, models.PostStatusPublished).
			First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundMessageError("Post '" + slug + "' not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByIDForAuthor returns a post of any status, but only to its author.
func (r *postRepository) GetByIDForAuthor(ctx context.Context, id, authorID uint) (*models.Post, error) {
	var post models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Category").
		Where("posts.id = ? AND posts.user_id = ?", id, authorID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("User.Profile").
		Preload("Category").
		Where("status = ?", models.PostStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("User.Profile").
		Preload("Category").
		Where("category_id = ? AND status = ?", categoryID, models.PostStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListByAuthor returns every post of the author regardless of status. Used by
// the author dashboard.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Category").
		Where("user_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListPopular returns the top published posts ranked by the weighted
// engagement score (likes 0.5, views 0.3, bookmarks 0.2).
func (r *postRepository) ListPopular(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post

	err := cache.CacheAside(ctx, cache.PopularPostsKey, &posts, cache.PopularTTL, func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx)).
			Preload("User").
			Preload("User.Profile").
			Preload("Category").
			Where("status = ?", models.PostStatusPublished).
			Order(popularityOrder).
			Limit(limit).
			Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Search(ctx context.Context, query string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	like := "%" + query + "%"
	if err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("User.Profile").
		Preload("Category").
		Where("status = ?", models.PostStatusPublished).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", like, like).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Post slug already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.Slug)
	cache.InvalidateCategories(ctx)
	return nil
}

// Delete removes the author's post along with its likes, bookmarks, and
// comments in one transaction.
func (r *postRepository) Delete(ctx context.Context, id, authorID uint) error {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "slug").
			Where("id = ? AND user_id = ?", id, authorID).
			First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		slug = post.Slug

		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, slug)
	cache.InvalidateCategories(ctx)
	return nil
}

// IncrementView bumps the view counter of a published post by one. The
// UPDATE is a single atomic statement; concurrent increments never lose
// counts. Drafts and archived posts report not found.
func (r *postRepository) IncrementView(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("slug = ? AND status = ?", slug, models.PostStatusPublished).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundMessageError("Post '" + slug + "' not found")
	}
	observability.PostViews.Inc()
	cache.InvalidatePost(ctx, slug)
	return nil
}

// AuthorStats aggregates views, post count, likes, and bookmarks across all
// of the author's posts.
func (r *postRepository) AuthorStats(ctx context.Context, authorID uint) (*models.AuthorStats, error) {
	stats := &models.AuthorStats{}

	row := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("COALESCE(SUM(views), 0), COUNT(*)").
		Where("user_id = ?", authorID).
		Row()
	if err := row.Scan(&stats.Views, &stats.Posts); err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.user_id = ?", authorID).
		Count(&stats.Likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Joins("JOIN posts ON posts.id = bookmarks.post_id").
		Where("posts.user_id = ?", authorID).
		Count(&stats.Bookmarks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return stats, nil
}
