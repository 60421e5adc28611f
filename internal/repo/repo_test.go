package repo

import (
	"BlogAPI/internal/model"
	"fmt"
	"sync/atomic"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testDBCounter atomic.Int64

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов
// репозиториев. Каждому тесту — своя БД, чтобы не делить состояние.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBCounter.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}, &model.Tag{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
