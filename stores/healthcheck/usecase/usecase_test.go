package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/nftcard/base/ctx"
)

type fakeRepo struct {
	dbErr    error
	cacheErr error
	cacheHit bool
}

func (f *fakeRepo) PingDB(ctx.Ctx) error {
	return f.dbErr
}

func (f *fakeRepo) PingCache(ctx.Ctx) error {
	f.cacheHit = true
	return f.cacheErr
}

func TestCheck(t *testing.T) {
	errDB := errors.New("db down")
	errCache := errors.New("cache down")

	repo := &fakeRepo{}
	assert.NoError(t, New(repo).Check(ctx.Background()))
	assert.True(t, repo.cacheHit)

	repo = &fakeRepo{dbErr: errDB}
	assert.Equal(t, errDB, New(repo).Check(ctx.Background()))
	assert.False(t, repo.cacheHit)

	repo = &fakeRepo{cacheErr: errCache}
	assert.Equal(t, errCache, New(repo).Check(ctx.Background()))
}
