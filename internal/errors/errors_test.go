package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type providerFailure struct {
	Msg string
}

func (e providerFailure) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	assert.EqualError(t, err, "test error")
}

func TestWrap(t *testing.T) {
	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(ErrFormat, "invalid field count")
		assert.EqualError(t, wrapped, "invalid field count: format error")
		assert.True(t, errors.Is(wrapped, ErrFormat))
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "wrapped"))
	})

	t.Run("double wrap keeps the sentinel", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrConfiguration, "master key not set"), "derive key")
		assert.True(t, Is(wrapped, ErrConfiguration))
		assert.False(t, Is(wrapped, ErrFormat))
	})
}

func TestWrapf(t *testing.T) {
	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(ErrNetwork, "request to %s", "api.example.com")
		assert.EqualError(t, wrapped, "request to api.example.com: network error")
		assert.True(t, Is(wrapped, ErrNetwork))
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		assert.Nil(t, Wrapf(nil, "wrapped %d", 1))
	})
}

func TestAs(t *testing.T) {
	err := Wrap(providerFailure{Msg: "boom"}, "fetch")

	var target providerFailure
	assert.True(t, As(err, &target))
	assert.Equal(t, "boom", target.Msg)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrConfiguration,
		ErrFormat,
		ErrAuthentication,
		ErrProvider,
		ErrNetwork,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
