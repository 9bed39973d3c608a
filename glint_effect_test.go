package glint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("re-runs when a dependency changes", func(t *testing.T) {
		log := []int{}

		count := NewSignal(0)
		doubled := NewComputed(func(_ int) int {
			return count.Read() * 2
		})

		NewEffect(func() {
			log = append(log, doubled.Read())
		})

		count.Write(1)
		count.Write(2)

		assert.Equal(t, []int{0, 2, 4}, log)
	})

	t.Run("runs cleanups before re-run", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 10",
		}, log)
	})

	t.Run("stop detaches from dependencies", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		e := NewEffect(func() {
			count.Read()
			runs++
		})

		e.Stop()
		count.Write(10)

		assert.Equal(t, 1, runs)
	})

	t.Run("stop runs cleanups", func(t *testing.T) {
		log := []string{}

		e := NewEffect(func() {
			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		e.Stop()
		e.Stop() // no-op

		assert.Equal(t, []string{"cleanup"}, log)
	})

	t.Run("drops dependencies not re-read", func(t *testing.T) {
		runs := 0

		gate := NewSignal(true)
		count := NewSignal(0)

		NewEffect(func() {
			if gate.Read() {
				count.Read()
			}
			runs++
		})

		gate.Write(false)
		assert.Equal(t, 2, runs)

		count.Write(10) // no longer a dependency
		assert.Equal(t, 2, runs)
	})

	t.Run("writes inside an effect chain in the same flush", func(t *testing.T) {
		log := []string{}

		celsius := NewSignal(0)
		fahrenheit := NewSignal(32)

		NewEffect(func() {
			fahrenheit.Write(celsius.Read()*9/5 + 32)
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("%d°F", fahrenheit.Read()))
		})

		celsius.Write(100)

		assert.Equal(t, []string{"32°F", "212°F"}, log)
	})

	t.Run("recursive effect may re-queue itself", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		NewEffectWithOptions(func() {
			runs++
			if c := count.Read(); c < 3 {
				count.Write(c + 1)
			}
		}, EffectOptions{Recursive: true})

		assert.Equal(t, 3, count.Peek())
		assert.Equal(t, 4, runs)
	})

	t.Run("non-recursive effect ignores self writes", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		NewEffect(func() {
			runs++
			if c := count.Read(); c < 3 {
				count.Write(c + 1)
			}
		})

		assert.Equal(t, 1, count.Peek())
		assert.Equal(t, 1, runs)
	})
}
