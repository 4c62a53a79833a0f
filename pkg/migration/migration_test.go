package migration_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/pkg/database"
	"github.com/shashiranjanraj/stockroom/pkg/migration"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

func init() {
	migration.Register("20250101000000_create_widgets_table", createWidgets{})
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRunAndRollback(t *testing.T) {
	db := openDB(t)
	runner := migration.New(db).WithOutput(io.Discard)

	require.NoError(t, runner.Run())
	assert.True(t, db.Migrator().HasTable(&widget{}))

	pending, err := runner.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, runner.Run(), "second run is a no-op")

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable(&widget{}))

	pending, err = runner.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"20250101000000_create_widgets_table"}, pending)
}

func TestStatus(t *testing.T) {
	db := openDB(t)
	var out bytes.Buffer
	runner := migration.New(db).WithOutput(&out)

	require.NoError(t, runner.Status())
	assert.Contains(t, out.String(), "Pending")

	require.NoError(t, runner.WithOutput(io.Discard).Run())
	out.Reset()
	require.NoError(t, runner.WithOutput(&out).Status())
	assert.Contains(t, out.String(), "Ran")
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() {
		migration.Register("20250101000000_create_widgets_table", createWidgets{})
	})
}
