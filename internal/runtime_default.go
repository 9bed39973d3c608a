//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the runtime bound to the calling goroutine, creating
// it on first use. Nodes stay bound to their creating runtime; handing them
// to another goroutine requires the host to serialize access.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}

func getGID() int64 {
	return goid.Get()
}
