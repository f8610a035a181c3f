package memdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const tbl = domain.Table("t")

type row struct {
	Name   string        `bson:"name"`
	Amount domain.Amount `bson:"amount"`
}

var bctx = ctx.Background()

func TestCRUD(t *testing.T) {
	db := New()
	req := require.New(t)

	req.NoError(db.Insert(bctx, tbl, "a", row{"a", domain.AmountFromInt64(1)}))
	req.ErrorIs(db.Insert(bctx, tbl, "a", row{"a", domain.AmountFromInt64(2)}), ErrDuplicateKey)

	var r row
	req.NoError(db.Get(bctx, tbl, "a", &r))
	req.Equal("1", r.Amount.String())

	req.NoError(db.Update(bctx, tbl, "a", row{"a", domain.AmountFromInt64(3)}))
	req.ErrorIs(db.Update(bctx, tbl, "b", row{}), ErrNotFound)
	req.NoError(db.Get(bctx, tbl, "a", &r))
	req.Equal("3", r.Amount.String())

	req.NoError(db.Delete(bctx, tbl, "a"))
	req.ErrorIs(db.Delete(bctx, tbl, "a"), ErrNotFound)
	req.ErrorIs(db.Get(bctx, tbl, "a", &r), ErrNotFound)
}

func TestScanInInsertionOrder(t *testing.T) {
	db := New()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, db.Put(bctx, tbl, name, row{Name: name}))
	}
	require.NoError(t, db.Delete(bctx, tbl, "a"))

	var names []string
	require.NoError(t, db.Scan(bctx, tbl, func(decode func(interface{}) error) (bool, error) {
		var r row
		if err := decode(&r); err != nil {
			return false, err
		}
		names = append(names, r.Name)
		return true, nil
	}))
	require.Equal(t, []string{"c", "b"}, names)
}

func TestTransactionRollsBack(t *testing.T) {
	db := New()
	require.NoError(t, db.Put(bctx, tbl, "keep", row{Name: "keep"}))

	boom := errors.New("boom")
	err := db.RunWithTransaction(bctx, func(c ctx.Ctx) error {
		require.NoError(t, db.Insert(c, tbl, "new", row{Name: "new"}))
		require.NoError(t, db.Delete(c, tbl, "keep"))
		// nested calls join the outer transaction
		return db.RunWithTransaction(c, func(c ctx.Ctx) error {
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	var r row
	require.NoError(t, db.Get(bctx, tbl, "keep", &r))
	require.ErrorIs(t, db.Get(bctx, tbl, "new", &r), ErrNotFound)
}

func TestTransactionCommits(t *testing.T) {
	db := New()
	require.NoError(t, db.RunWithTransaction(bctx, func(c ctx.Ctx) error {
		return db.Insert(c, tbl, "new", row{Name: "new"})
	}))
	var r row
	require.NoError(t, db.Get(bctx, tbl, "new", &r))
}
