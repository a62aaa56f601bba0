package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithName("test"),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"run task",
		"after recovered",
		"panic",
	}, res)
	assert.NotNil(t, ev)
	assert.Equal(t, "panic", ev.Panic)
	assert.NotEmpty(t, ev.Stack)
}

func TestRecoverableGoReturns(t *testing.T) {
	ran := false

	ev, ok := <-RecoverableGo(func() {
		ran = true
	})

	assert.True(t, ran)
	assert.False(t, ok)
	assert.Nil(t, ev)
}
