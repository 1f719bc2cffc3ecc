package repositories

import (
	"github.com/tahmid-dev/ripple/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
// Every read preloads the author explicitly; callers never get a post
// whose Author would require further I/O to resolve.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts(limit, offset int) ([]models.Post, error)
	GetPostsByAuthor(authorID uint, limit, offset int) ([]models.Post, error)
	GetPostsByAuthors(authorIDs []uint, limit, offset int) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return err
	}
	// Read back with the author populated so the caller can build the
	// response without a second round trip.
	return r.db.Preload("Author").First(post, post.ID).Error
}

func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) GetAllPosts(limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) GetPostsByAuthor(authorID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) GetPostsByAuthors(authorIDs []uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}
