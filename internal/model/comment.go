package model

import "time"

// Comment — комментарий к посту. Первичный ключ — строковый uuid,
// присваивается сервисом при создании, а не автоинкрементом БД.
type Comment struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	Comment string `gorm:"not null" json:"comment"`
	PostID  int64  `gorm:"not null;index" json:"postId"`
	UserID  int64  `gorm:"not null;index" json:"userId"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
