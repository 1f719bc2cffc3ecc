package models

import "time"

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"size:1000;not null"`
	AuthorID  uint      `json:"-" gorm:"index;not null"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostAuthor is the author identity attached to a post response: id and
// name only, never the full profile.
type PostAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PostResponse struct {
	ID        uint       `json:"id"`
	Content   string     `json:"content"`
	Author    PostAuthor `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToResponse assumes Author has been populated by the repository.
func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:      p.ID,
		Content: p.Content,
		Author: PostAuthor{
			ID:   p.Author.ID,
			Name: p.Author.Name,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}
