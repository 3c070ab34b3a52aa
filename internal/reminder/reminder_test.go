package reminder

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskzen-go/internal/models"
	"taskzen-go/internal/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.ChatTurn{}))

	svc := NewService(
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
		"Asia/Kolkata",
	)
	return svc, db
}

func TestStartRejectsNonPositiveInterval(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Error(t, svc.Start(0))
	assert.Error(t, svc.Start(-time.Minute))
}

func TestSweepOnlyOptedInUsers(t *testing.T) {
	svc, db := newTestService(t)

	optedIn := models.User{Email: "alice@example.com"}
	optedIn.Settings.TaskReminders = true
	require.NoError(t, db.Create(&optedIn).Error)
	require.NoError(t, db.Create(&models.User{Email: "bob@example.com"}).Error)

	require.NoError(t, db.Create(&models.Task{
		UserEmail: "alice@example.com",
		Title:     "overdue",
		Status:    models.StatusPending,
		DueDate:   "2020-01-01",
	}).Error)

	// The sweep only reads and logs; it must not error or mutate anything.
	svc.sweep()

	var count int64
	db.Model(&models.Task{}).Where("status = ?", models.StatusPending).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLocationFallback(t *testing.T) {
	svc, _ := newTestService(t)

	assert.NotNil(t, svc.location(""))
	assert.NotNil(t, svc.location("Not/AZone"))
	assert.Equal(t, "Asia/Kolkata", svc.location("Asia/Kolkata").String())
}
