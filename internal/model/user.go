package model

import "time"

// User — зарегистрированный автор. Email уникален на уровне БД,
// пароль хранится только как bcrypt-дайджест и никогда не сериализуется.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Связи
	Posts    []Post    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"posts,omitempty"`
	Comments []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"comments,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
