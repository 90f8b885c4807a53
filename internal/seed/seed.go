// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryNames = []string{
	"Technology", "Science", "Travel", "Food", "Music",
	"Programming", "Design", "Finance", "Health", "Books",
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows, children first.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Notification{}, &models.Comment{}, &models.Like{},
		&models.Bookmark{}, &models.Follow{}, &models.Post{},
		&models.Category{}, &models.Profile{}, &models.User{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	log.Println("✓ Existing data cleared")
	return nil
}

// Seed populates the database with users, categories, posts and engagement.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("🌱 Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	categories, err := s.createCategories()
	if err != nil {
		return fmt.Errorf("create categories: %w", err)
	}
	log.Printf("✓ %d categories created", len(categories))

	posts, err := s.createPosts(users, categories, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.createFollows(users); err != nil {
		return fmt.Errorf("create follows: %w", err)
	}
	if err := s.createEngagement(users, posts); err != nil {
		return fmt.Errorf("create engagement: %w", err)
	}
	log.Println("✓ Follow graph and engagement created")
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	// One hash shared across all seed users keeps seeding fast.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		fullName := gofakeit.Name()
		user := &models.User{
			Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hash),
			FullName: fullName,
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			bio := gofakeit.Sentence(8)
			if len(bio) > 160 {
				bio = bio[:160]
			}
			profile := &models.Profile{
				UserID:   user.ID,
				FullName: fullName,
				Bio:      bio,
				Country:  gofakeit.Country(),
			}
			return tx.Create(profile).Error
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createCategories() ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.Category{
			Name: name,
			Slug: strings.ToLower(name),
		}
		if err := s.db.Create(category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *Seeder) createPosts(users []*models.User, categories []*models.Category, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		title := strings.TrimSuffix(gofakeit.Sentence(6), ".")
		content := gofakeit.Paragraph(3, 4, 12, "\n\n")

		status := models.PostStatusPublished
		if s.rand.Intn(10) < 2 {
			status = models.PostStatusDraft
		}

		post := &models.Post{
			UserID:  author.ID,
			Title:   title,
			Content: content,
			Preview: preview(content),
			Image:   fmt.Sprintf("https://picsum.photos/seed/%s/800/400", gofakeit.UUID()),
			Tags:    strings.Join([]string{gofakeit.Word(), gofakeit.Word()}, ","),
			Status:  status,
			Slug:    fmt.Sprintf("%s-%d", slugify(title), i),
			Views:   int64(s.rand.Intn(500)),
		}
		if len(categories) > 0 && s.rand.Intn(10) < 8 {
			post.CategoryID = &categories[s.rand.Intn(len(categories))].ID
		}
		if status == models.PostStatusPublished {
			// realistic created_at spread
			publishedAt := time.Now().Add(-time.Duration(s.rand.Intn(90*24)) * time.Hour)
			post.PublishedAt = &publishedAt
		}

		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) createFollows(users []*models.User) error {
	for _, follower := range users {
		for i := 0; i < s.rand.Intn(5); i++ {
			target := users[s.rand.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
			if err := s.db.Where(follow).FirstOrCreate(follow).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createEngagement(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		if post.Status != models.PostStatusPublished {
			continue
		}
		for i := 0; i < s.rand.Intn(6); i++ {
			user := users[s.rand.Intn(len(users))]
			like := &models.Like{UserID: user.ID, PostID: post.ID}
			if err := s.db.Where(like).FirstOrCreate(like).Error; err != nil {
				return err
			}
			noti := &models.Notification{
				RecipientID: post.UserID,
				ActorID:     user.ID,
				PostID:      &post.ID,
				Type:        models.NotificationLike,
			}
			if err := s.db.Create(noti).Error; err != nil {
				return err
			}
		}
		for i := 0; i < s.rand.Intn(3); i++ {
			user := users[s.rand.Intn(len(users))]
			userID := user.ID
			comment := &models.Comment{
				PostID:  post.ID,
				UserID:  &userID,
				Content: gofakeit.Sentence(10),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return err
			}
		}
		if s.rand.Intn(4) == 0 {
			user := users[s.rand.Intn(len(users))]
			bookmark := &models.Bookmark{UserID: user.ID, PostID: post.ID}
			if err := s.db.Where(bookmark).FirstOrCreate(bookmark).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func slugify(title string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevDash = false
		} else if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		slug = "post"
	}
	return slug
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) > 200 {
		return string(runes[:200])
	}
	return content
}
