package repo

import (
	"BlogAPI/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к Postgres и выполняет автомиграции моделей.
// TranslateError нужен, чтобы нарушение unique-индекса приходило как
// gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}, &model.Tag{}); err != nil {
		return nil, err
	}
	return db, nil
}
