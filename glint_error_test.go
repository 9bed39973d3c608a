package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	t.Run("receives effect panics", func(t *testing.T) {
		caught := []any{}

		SetErrorHandler(func(err any, stack []byte) {
			caught = append(caught, err)
			assert.NotEmpty(t, stack)
		})
		defer SetErrorHandler(nil)

		count := NewSignal(0)

		NewEffect(func() {
			if count.Read() > 0 {
				panic("effect boom")
			}
		})

		count.Write(1)

		assert.Equal(t, []any{"effect boom"}, caught)

		// the effect stays subscribed after a panic
		count.Write(2)
		assert.Len(t, caught, 2)
	})

	t.Run("receives derivation panics", func(t *testing.T) {
		caught := []any{}

		SetErrorHandler(func(err any, stack []byte) {
			caught = append(caught, err)
		})
		defer SetErrorHandler(nil)

		c := NewComputed(func(_ int) int {
			panic("compute boom")
		})

		assert.Panics(t, func() { c.Read() })
		assert.Equal(t, []any{"compute boom"}, caught)
	})
}
