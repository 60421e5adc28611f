package model

import "time"

// Post — публикация пользователя. Связана many-to-many с тегами
// через join-таблицу post_tags.
type Post struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `gorm:"not null;index" json:"userId"` // ссылка на users.id

	User     *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Comments []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"comments,omitempty"`
	Tags     []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
