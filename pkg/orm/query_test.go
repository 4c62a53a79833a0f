package orm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/database"
	"github.com/shashiranjanraj/stockroom/pkg/orm"
)

type shelf struct {
	ID    uint
	Name  string
	Boxes []box
}

type box struct {
	ID      uint
	ShelfID uint
}

func newQuery(t *testing.T) *orm.Query {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.AutoMigrate(&shelf{}, &box{}))
	return orm.New(db).WithContext(context.Background())
}

func TestFirstNotFound(t *testing.T) {
	q := newQuery(t)

	var s shelf
	err := q.First(&s, 99)
	assert.ErrorIs(t, err, orm.ErrNotFound)
}

func TestCreateSkipsAssociations(t *testing.T) {
	q := newQuery(t)

	s := shelf{Name: "A", Boxes: []box{{}, {}}}
	require.NoError(t, q.Create(&s))
	assert.NotZero(t, s.ID)

	var boxes []box
	require.NoError(t, q.Get(&boxes))
	assert.Empty(t, boxes)

	var got shelf
	require.NoError(t, q.Preload("Boxes").First(&got, s.ID))
	assert.Equal(t, "A", got.Name)
	assert.Empty(t, got.Boxes)
}

func TestDeleteReportsMissingRow(t *testing.T) {
	q := newQuery(t)

	assert.ErrorIs(t, q.Delete(&shelf{}, 1), orm.ErrNotFound)
	assert.NoError(t, q.DeleteWhere(&box{}, "shelf_id = ?", 1), "bulk delete of nothing is fine")

	s := shelf{Name: "B"}
	require.NoError(t, q.Create(&s))
	assert.NoError(t, q.Delete(&shelf{}, s.ID))
}

func TestTransactionRollsBack(t *testing.T) {
	q := newQuery(t)

	boom := errors.New("boom")
	err := q.Transaction(func(tx *orm.Query) error {
		if err := tx.Create(&shelf{Name: "C"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var shelves []shelf
	require.NoError(t, q.Get(&shelves))
	assert.Empty(t, shelves)
}

func TestWhereOrderGet(t *testing.T) {
	q := newQuery(t)
	for _, name := range []string{"z", "a", "m"} {
		require.NoError(t, q.Create(&shelf{Name: name}))
	}

	var shelves []shelf
	require.NoError(t, q.Where("name <> ?", "m").Order("name").Get(&shelves))
	require.Len(t, shelves, 2)
	assert.Equal(t, "a", shelves[0].Name)
	assert.Equal(t, "z", shelves[1].Name)
}
