package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"devpath/models"
	"devpath/models/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LoginTracking{}, &content.Module{}, &content.SubModule{}))
	return db
}

func TestClearExpiredBlocks(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	expired := &models.User{
		Email: "expired@x.com", Password: "hash",
		IsBlocked: true, BlockedUntil: &past, FailedLoginAttempts: 3,
	}
	active := &models.User{
		Email: "active@x.com", Password: "hash",
		IsBlocked: true, BlockedUntil: &future, FailedLoginAttempts: 3,
	}
	require.NoError(t, users.Create(expired))
	require.NoError(t, users.Create(active))

	count, err := users.ClearExpiredBlocks(time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	saved, err := users.GetByID(expired.ID)
	require.NoError(t, err)
	assert.False(t, saved.IsBlocked)
	assert.Nil(t, saved.BlockedUntil)
	assert.Zero(t, saved.FailedLoginAttempts)

	saved, err = users.GetByID(active.ID)
	require.NoError(t, err)
	assert.True(t, saved.IsBlocked)
}

func TestModuleSoftDelete(t *testing.T) {
	db := openTestDB(t)
	modules := NewModuleRepository(db)

	module := &content.Module{Title: "Go Basics", Level: models.LevelBeginner}
	require.NoError(t, modules.Create(module))
	require.NoError(t, modules.Delete(module))

	_, err := modules.GetByID(module.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := modules.ListAll()
	require.NoError(t, err)
	assert.Empty(t, list)

	// The row still exists in the table, only hidden.
	var raw content.Module
	require.NoError(t, db.Unscoped().Where("id = ?", module.ID).First(&raw).Error)
	assert.True(t, raw.IsDeleted)
}

func TestCountCreatedSince(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)

	require.NoError(t, users.Create(&models.User{Email: "a@x.com", Password: "hash"}))

	count, err := users.CountCreatedSince(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = users.CountCreatedSince(time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, count)
}
