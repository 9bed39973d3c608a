package glint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("derives value from signal", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputed(func(_ int) int {
			log = append(log, "doubling")
			return count.Read() * 2
		})
		plustwo := NewComputed(func(_ int) int {
			log = append(log, "adding")
			return double.Read() + 2
		})

		assert.Equal(t, 1, count.Read())
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 4, plustwo.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
		assert.Equal(t, 20, double.Read())
		assert.Equal(t, 22, plustwo.Read())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("is lazy until first read", func(t *testing.T) {
		runs := 0

		count := NewSignal(1)
		double := NewComputed(func(_ int) int {
			runs++
			return count.Read() * 2
		})

		count.Write(2)
		count.Write(3)
		assert.Equal(t, 0, runs)

		assert.Equal(t, 6, double.Read())
		assert.Equal(t, 1, runs)
	})

	t.Run("does not recompute consumers when value unchanged", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		a := NewComputed(func(_ int) int {
			log = append(log, "running a")
			return count.Read() * 0 // always returns 0
		})
		b := NewComputed(func(_ int) int {
			log = append(log, "running b")
			return a.Read() + 1
		})

		a.Read()
		b.Read()

		count.Write(10)
		b.Read() // a recomputes, b's cache stays valid

		assert.Equal(t, []string{
			"running a",
			"running b",
			"running a",
		}, log)
	})

	t.Run("receives previous value", func(t *testing.T) {
		prevs := []int{}

		count := NewSignal(1)
		c := NewComputed(func(prev int) int {
			prevs = append(prevs, prev)
			return count.Read()
		})

		c.Read()
		count.Write(2)
		c.Read()

		assert.Equal(t, []int{0, 1}, prevs)
	})

	t.Run("diamond recomputes once", func(t *testing.T) {
		computes := 0
		runs := 0

		s := NewSignal(1)
		a := NewComputed(func(_ int) int { return s.Read() + 1 })
		b := NewComputed(func(_ int) int { return s.Read() * 10 })
		c := NewComputed(func(_ int) int {
			computes++
			return a.Read() + b.Read()
		})

		NewEffect(func() {
			c.Read()
			runs++
		})

		s.Write(2)

		assert.Equal(t, 2, computes) // initial + one after the write
		assert.Equal(t, 2, runs)
		assert.Equal(t, 23, c.Read())
	})

	t.Run("detects cycles", func(t *testing.T) {
		var c *Computed[int]
		c = NewComputed(func(_ int) int {
			return c.Read()
		})

		defer func() {
			rec := recover()
			assert.NotNil(t, rec)

			err, ok := rec.(error)
			assert.True(t, ok)
			assert.True(t, errors.Is(err, ErrCycleDetected))
		}()

		c.Read()
	})

	t.Run("keeps previous value on panic", func(t *testing.T) {
		SetErrorHandler(func(err any, stack []byte) {})
		defer SetErrorHandler(nil)

		count := NewSignal(1)
		c := NewComputed(func(_ int) int {
			v := count.Read()
			if v > 1 {
				panic(fmt.Sprintf("bad value %d", v))
			}
			return v
		})

		assert.Equal(t, 1, c.Read())

		count.Write(2)
		assert.Panics(t, func() { c.Read() })

		count.Write(1)
		assert.Equal(t, 1, c.Read())
	})

	t.Run("custom equality", func(t *testing.T) {
		runs := 0

		count := NewSignal(1)
		c := NewComputedWithOptions(func(_ int) int {
			return count.Read()
		}, Options[int]{
			Equals: func(a, b int) bool { return a%2 == b%2 },
		})

		NewEffect(func() {
			c.Read()
			runs++
		})

		count.Write(3) // odd like 1, downstream skipped
		assert.Equal(t, 1, runs)

		count.Write(4)
		assert.Equal(t, 2, runs)
	})

	t.Run("disposes nested effects on recompute", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputed(func(_ int) int {
			NewEffect(func() {
				log = append(log, "nested effect")

				OnCleanup(func() {
					log = append(log, "nested cleanup")
				})
			})

			return count.Read() * 2
		})

		double.Read()

		count.Write(10)
		double.Read()

		assert.Equal(t, []string{
			"nested effect",
			"nested cleanup",
			"nested effect",
		}, log)
	})
}
