// Package orm is a thin, chainable layer over gorm that records query latency
// and normalises "not found" into a single sentinel.
//
//	var p models.Product
//	err := orm.New(db).WithContext(ctx).Preload("Items").First(&p, id)
//	if errors.Is(err, orm.ErrNotFound) { ... }
package orm

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/stockroom/pkg/metrics"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by First when no row matches.
var ErrNotFound = errors.New("record not found")

type Query struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

func (q *Query) Where(query interface{}, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Preload(association string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(association, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}, conds ...interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return translate(q.db.First(dest, conds...).Error)
}

// Create inserts v without cascading into associations.
func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Omit(clause.Associations).Create(v).Error
}

// Save updates every column of v without touching associations.
func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Omit(clause.Associations).Save(v).Error
}

// Delete removes rows matching v (and conds). It reports ErrNotFound when
// nothing was deleted.
func (q *Query) Delete(v interface{}, conds ...interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	res := q.db.Delete(v, conds...)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWhere removes all rows of model matching the condition. Zero rows is
// not an error.
func (q *Query) DeleteWhere(model interface{}, query interface{}, args ...interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Where(query, args...).Delete(model).Error
}

// Transaction runs fn inside a database transaction. Returning an error
// rolls back.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
