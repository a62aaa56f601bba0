package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r, e := ts.im.cache.Get([]byte(k))
	ts.NoError(e)
	ts.Equal(v, r)

	time.Sleep(1100 * time.Millisecond)
	_, e = ts.im.cache.Get([]byte(k))
	ts.Equal(freecache.ErrNotFound, e)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc string
		Key  string
		Val  string
		Err  error
	}{
		{
			Desc: "Success",
			Key:  "key",
			Val:  "value",
			Err:  nil,
		},
		{
			Desc: "Not found",
			Key:  "",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if len(c.Key) > 0 {
			ts.NoError(ts.im.cache.Set([]byte(c.Key), []byte(c.Val), 10), c.Desc)
		}

		v, ttl, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Err, e, c.Desc)
		if c.Err == nil {
			ts.Equal([]byte(c.Val), v, c.Desc)
			ts.True(ttl > 0 && ttl <= 10*time.Second, c.Desc)
		}
	}
}

func (ts *testsuite) TestIncr() {
	_, _, e := ts.im.Incr(mockCtx, "n", 1)
	ts.Equal(provider.ErrNotFound, e)

	ts.NoError(ts.im.Set(mockCtx, "n", []byte("41"), 10*time.Second))
	v, _, e := ts.im.Incr(mockCtx, "n", 1)
	ts.NoError(e)
	ts.Equal(int64(42), v)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), 10*time.Second))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, e := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestMaxTtl() {
	im := NewPrimitive("capped", 1, WithMaxTtl(2*time.Second)).(*impl)
	defer im.cache.Clear()

	tests := []struct {
		desc string
		ttl  time.Duration
	}{
		{desc: "longer ttl is capped", ttl: time.Hour},
		{desc: "no ttl is capped", ttl: 0},
	}
	for _, t := range tests {
		ts.NoError(im.Set(mockCtx, "k", []byte("v"), t.ttl), t.desc)
		_, ttl, err := im.Get(mockCtx, "k")
		ts.NoError(err, t.desc)
		ts.True(ttl > 0 && ttl <= 2*time.Second, t.desc)
	}
}

func (ts *testsuite) TestExpireSeconds() {
	ts.Equal(0, ts.im.expireSeconds(0))
	ts.Equal(1, ts.im.expireSeconds(200*time.Millisecond))
	ts.Equal(90, ts.im.expireSeconds(90*time.Second))

	capped := NewPrimitive("capped", 1, WithMaxTtl(30*time.Second)).(*impl)
	ts.Equal(30, capped.expireSeconds(0))
	ts.Equal(30, capped.expireSeconds(time.Hour))
	ts.Equal(10, capped.expireSeconds(10*time.Second))
}
