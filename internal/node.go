package internal

import "reflect"

type kind uint8

const (
	kindSource kind = iota
	kindDerived
	kindEffect
	kindScope
)

func (k kind) String() string {
	switch k {
	case kindSource:
		return "source"
	case kindDerived:
		return "derived"
	case kindEffect:
		return "effect"
	case kindScope:
		return "scope"
	}
	return "unknown"
}

// node is the uniform header shared by every reactive entity.
// Propagation and refresh walk links through it and branch on the kind tag;
// payloads live in the kind-specific structs embedding it.
type node struct {
	id      uint64
	kind    kind
	flags   flags

	// bumped exactly when the produced value changes, including error
	// transitions. Links record the version they captured, which is the
	// staleness witness used by refresh.
	version uint64

	// the execution generation that last read this producer, so repeated
	// reads within one execution keep a single link
	seenGen uint64

	// incoming links: producers this node currently depends on.
	// depsTail doubles as the reuse cursor while the node executes.
	deps     *link
	depsTail *link

	// outgoing links: consumers currently subscribed.
	subs     *link
	subsTail *link
}

// reactiveNode is implemented by every entity carrying a node header.
type reactiveNode interface {
	node() *node
}

// EqualFunc decides whether a newly produced value equals the previous one.
// Equal values do not propagate.
type EqualFunc func(a, b any) bool

func defaultEquals(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
