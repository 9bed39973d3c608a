// Package extensions layers optional inspection tooling over the reactive
// kernel. Nothing here is required by the kernel itself.
package extensions

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/m1gwings/treedrawer/tree"
)

// GraphLog is an observer that records the reactive graph as it evolves and
// logs every event through slog. Register it with glint.SetObserver.
//
//	gl := extensions.NewGraphLog(slog.NewJSONHandler(os.Stderr, nil))
//	glint.SetObserver(gl)
type GraphLog struct {
	mu     sync.Mutex
	logger *slog.Logger

	kinds  map[uint64]string
	labels map[uint64]string
	deps   map[uint64][]uint64 // subscriber -> producers, in attach order
}

func NewGraphLog(handler slog.Handler) *GraphLog {
	return &GraphLog{
		logger: slog.New(handler),
		kinds:  make(map[uint64]string),
		labels: make(map[uint64]string),
		deps:   make(map[uint64][]uint64),
	}
}

// Label attaches a human-readable name to a node id for Draw output.
func (g *GraphLog) Label(id uint64, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.labels[id] = name
}

func (g *GraphLog) NodeCreated(id uint64, kind string) {
	g.mu.Lock()
	g.kinds[id] = kind
	g.mu.Unlock()

	g.logger.Debug("node created", "node", id, "kind", kind)
}

func (g *GraphLog) ValueChanged(id uint64, value any) {
	g.logger.Debug("value changed", "node", id, "value", value)
}

func (g *GraphLog) LinkAttached(sub, dep uint64) {
	g.mu.Lock()
	g.deps[sub] = append(g.deps[sub], dep)
	g.mu.Unlock()

	g.logger.Debug("link attached", "sub", sub, "dep", dep)
}

func (g *GraphLog) LinkDetached(sub, dep uint64) {
	g.mu.Lock()
	edges := g.deps[sub]
	for i, d := range edges {
		if d == dep {
			g.deps[sub] = append(edges[:i], edges[i+1:]...)
			break
		}
	}
	g.mu.Unlock()

	g.logger.Debug("link detached", "sub", sub, "dep", dep)
}

func (g *GraphLog) NodeStopped(id uint64) {
	g.mu.Lock()
	delete(g.kinds, id)
	delete(g.labels, id)
	delete(g.deps, id)
	g.mu.Unlock()

	g.logger.Debug("node stopped", "node", id)
}

// Draw renders the dependency tree below the given subscriber.
func (g *GraphLog) Draw(root uint64) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := tree.NewTree(tree.NodeString(g.name(root)))
	g.build(t, root, map[uint64]bool{root: true})
	return t.String()
}

func (g *GraphLog) build(t *tree.Tree, id uint64, visited map[uint64]bool) {
	for _, dep := range g.deps[id] {
		if visited[dep] {
			continue
		}
		visited[dep] = true

		child := t.AddChild(tree.NodeString(g.name(dep)))
		g.build(child, dep, visited)
	}
}

func (g *GraphLog) name(id uint64) string {
	if label, ok := g.labels[id]; ok {
		return label
	}
	if kind, ok := g.kinds[id]; ok {
		return fmt.Sprintf("%s#%d", kind, id)
	}
	return fmt.Sprintf("#%d", id)
}
