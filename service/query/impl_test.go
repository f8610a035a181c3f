package query

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type dummy struct {
	Dummy  string `bson:"dummy"`
	Update string `bson:"updatekey"`
}

type querySuite struct {
	suite.Suite
	im *impl
}

func TestQuerySuite(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupTest() {
	q.im = New(mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:        os.Getenv("MONGO_URI"),
		AuthDBName: "admin",
		DBName:     dbName,
	}), false).(*impl)
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestInsertAndFindOne() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "1"}))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &res))
	q.Equal(dummy{"a", "1"}, res)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "b"}, &res))
}

func (q *querySuite) TestInsertShouldFailWithDuplicateKey() {
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, Index{Keys: []string{"dummy"}, Unique: true}))
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "1"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{"a", "2"}))
	q.NoError(q.im.Insert(mockCTX, mockTable, dummy{"b", "2"}))
}

func (q *querySuite) TestUpsertAndCount() {
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{"a", "1"}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{"a", "2"}))

	cnt, err := q.im.Count(mockCTX, mockTable, bson.M{"dummy": "a"})
	q.Require().NoError(err)
	q.Equal(1, cnt)

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &res))
	q.Equal("2", res.Update)
}

func (q *querySuite) TestSearchNSorts() {
	for _, d := range []dummy{{"b", "1"}, {"a", "1"}, {"c", "2"}} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, d))
	}

	var res []dummy
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 0, "-dummy", bson.M{}, &res))
	q.Equal([]dummy{{"c", "2"}, {"b", "1"}, {"a", "1"}}, res)

	res = nil
	q.Require().NoError(q.im.SearchNSorts(mockCTX, mockTable, 1, 1, []string{"updatekey", "dummy"}, bson.M{}, &res))
	q.Equal([]dummy{{"b", "1"}}, res)
}

func (q *querySuite) TestPatchAndRemove() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "1"}))
	q.Require().NoError(q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "9"}))
	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "z"}, bson.M{"updatekey": "9"}))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &res))
	q.Equal("9", res.Update)

	q.Require().NoError(q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
}

func (q *querySuite) TestRunWithTransactionAborts() {
	// collections can't be created inside a transaction on older servers
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"seed", "0"}))

	boom := errors.New("boom")
	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		if err := q.im.Insert(c, mockTable, dummy{"a", "1"}); err != nil {
			return err
		}
		// nested call joins the outer transaction
		return q.im.RunWithTransaction(c, func(c ctx.Ctx) error {
			if err := q.im.Insert(c, mockTable, dummy{"b", "1"}); err != nil {
				return err
			}
			return boom
		})
	})
	q.ErrorIs(err, boom)

	cnt, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.Require().NoError(err)
	q.Equal(1, cnt)
}
