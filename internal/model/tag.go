package model

import "time"

// Tag — метка поста. Наружу отдаётся сгенерированный TagID (uuid),
// числовой ID остаётся внутренним суррогатным ключом.
type Tag struct {
	ID    int64  `gorm:"primaryKey" json:"-"`
	TagID string `gorm:"uniqueIndex;type:uuid;not null" json:"tagId"`
	Name  string `json:"name"`

	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
