// Package memdb is an in-process table store for single node runs and tests.
// Rows are kept bson encoded so they go through the same codecs as mongo.
package memdb

import (
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	ErrNotFound     = errors.New("row not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

const keyInTx = "memdbTx"

type table struct {
	rows  map[string][]byte
	order []string
}

func (t *table) clone() *table {
	c := &table{
		rows:  make(map[string][]byte, len(t.rows)),
		order: make([]string, len(t.order)),
	}
	// encoded rows are never mutated in place, sharing them is fine
	for k, v := range t.rows {
		c.rows[k] = v
	}
	copy(c.order, t.order)
	return c
}

func (t *table) remove(key string) {
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

type DB struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	tables map[domain.Table]*table
}

func New() *DB {
	return &DB{tables: map[domain.Table]*table{}}
}

func (db *DB) table(name domain.Table) *table {
	t, ok := db.tables[name]
	if !ok {
		t = &table{rows: map[string][]byte{}}
		db.tables[name] = t
	}
	return t
}

// Insert adds a row, ErrDuplicateKey when key is taken.
func (db *DB) Insert(c ctx.Ctx, name domain.Table, key string, v interface{}) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		c.WithField("err", err).Error("bson.Marshal failed")
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	t := db.table(name)
	if _, ok := t.rows[key]; ok {
		return ErrDuplicateKey
	}
	t.rows[key] = raw
	t.order = append(t.order, key)
	return nil
}

// Put writes a row whether or not it exists.
func (db *DB) Put(c ctx.Ctx, name domain.Table, key string, v interface{}) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		c.WithField("err", err).Error("bson.Marshal failed")
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	t := db.table(name)
	if _, ok := t.rows[key]; !ok {
		t.order = append(t.order, key)
	}
	t.rows[key] = raw
	return nil
}

// Update replaces an existing row, ErrNotFound when there is none.
func (db *DB) Update(c ctx.Ctx, name domain.Table, key string, v interface{}) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		c.WithField("err", err).Error("bson.Marshal failed")
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	t := db.table(name)
	if _, ok := t.rows[key]; !ok {
		return ErrNotFound
	}
	t.rows[key] = raw
	return nil
}

func (db *DB) Get(c ctx.Ctx, name domain.Table, key string, out interface{}) error {
	db.mu.RLock()
	raw, ok := db.table(name).rows[key]
	db.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return bson.Unmarshal(raw, out)
}

func (db *DB) Delete(c ctx.Ctx, name domain.Table, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	t := db.table(name)
	if _, ok := t.rows[key]; !ok {
		return ErrNotFound
	}
	t.remove(key)
	return nil
}

// Scan calls fn for every row in insertion order until fn returns false.
func (db *DB) Scan(c ctx.Ctx, name domain.Table, fn func(decode func(out interface{}) error) (bool, error)) error {
	db.mu.RLock()
	t := db.table(name)
	raws := make([][]byte, 0, len(t.order))
	for _, k := range t.order {
		raws = append(raws, t.rows[k])
	}
	db.mu.RUnlock()

	for _, raw := range raws {
		raw := raw
		more, err := fn(func(out interface{}) error {
			return bson.Unmarshal(raw, out)
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}

// RunWithTransaction runs fn with exclusive write access. Every change made
// during fn is rolled back when fn fails. Nested calls join the outer one.
func (db *DB) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	if c.Value(keyInTx) != nil {
		return fn(c)
	}
	db.txMu.Lock()
	defer db.txMu.Unlock()

	snapshot := db.snapshot()
	if err := fn(ctx.WithValue(c, keyInTx, true)); err != nil {
		db.restore(snapshot)
		return err
	}
	return nil
}

func (db *DB) snapshot() map[domain.Table]*table {
	db.mu.RLock()
	defer db.mu.RUnlock()
	res := make(map[domain.Table]*table, len(db.tables))
	for name, t := range db.tables {
		res[name] = t.clone()
	}
	return res
}

func (db *DB) restore(tables map[domain.Table]*table) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.tables = tables
}
