package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/domain/keys"
	"github.com/x-xyz/nftcard/service/cache/provider"
	"github.com/x-xyz/nftcard/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type fragment struct {
	Html []byte `json:"html"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	c := &fragment{}
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", c))

	ts.NoError(ts.im.Set(mockCtx, "k", fragment{Html: []byte("<p>")}))
	ts.NoError(ts.im.Get(mockCtx, "k", c))
	ts.Equal([]byte("<p>"), c.Html)

	_, _, err := ts.cache.Get(mockCtx, keys.RedisKey("testing", "k"))
	ts.NoError(err)

	time.Sleep(1100 * time.Millisecond)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", c))
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", fragment{}))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", &fragment{}))
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &fragment{Html: []byte("x")}, nil
	}

	c := &fragment{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "k", c, getter))
	ts.Equal([]byte("x"), c.Html)

	c = &fragment{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "k", c, getter))
	ts.Equal([]byte("x"), c.Html)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterError() {
	errBoom := errors.New("boom")
	err := ts.im.GetByFunc(mockCtx, "k", &fragment{}, func() (interface{}, error) {
		return nil, errBoom
	})
	ts.Equal(errBoom, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", &fragment{}))
}
