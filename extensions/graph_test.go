package extensions

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func silent() *GraphLog {
	return NewGraphLog(slog.NewTextHandler(io.Discard, nil))
}

func TestGraphLog(t *testing.T) {
	t.Run("tracks attached links", func(t *testing.T) {
		g := silent()

		g.NodeCreated(1, "source")
		g.NodeCreated(2, "derived")
		g.NodeCreated(3, "effect")
		g.LinkAttached(2, 1)
		g.LinkAttached(3, 2)

		out := g.Draw(3)
		assert.Contains(t, out, "effect#3")
		assert.Contains(t, out, "derived#2")
		assert.Contains(t, out, "source#1")
	})

	t.Run("uses labels when set", func(t *testing.T) {
		g := silent()

		g.NodeCreated(1, "source")
		g.NodeCreated(2, "effect")
		g.LinkAttached(2, 1)
		g.Label(1, "count")
		g.Label(2, "render")

		out := g.Draw(2)
		assert.Contains(t, out, "count")
		assert.Contains(t, out, "render")
		assert.False(t, strings.Contains(out, "source#1"))
	})

	t.Run("forgets detached links", func(t *testing.T) {
		g := silent()

		g.NodeCreated(1, "source")
		g.NodeCreated(2, "effect")
		g.LinkAttached(2, 1)
		g.LinkDetached(2, 1)

		out := g.Draw(2)
		assert.False(t, strings.Contains(out, "source#1"))
	})
}
