package internal

// EffectQueue holds notified effects in FIFO order of first notification.
type EffectQueue struct {
	effects []*Effect
}

func NewEffectQueue() *EffectQueue {
	return &EffectQueue{
		effects: make([]*Effect, 0),
	}
}

func (q *EffectQueue) Enqueue(e *Effect) {
	q.effects = append(q.effects, e)
}

func (q *EffectQueue) IsEmpty() bool {
	return len(q.effects) == 0
}

// Drain runs each queued effect in order. Effects enqueued while draining
// are picked up by the same pass.
func (q *EffectQueue) Drain(run func(*Effect)) {
	for i := 0; i < len(q.effects); i++ {
		run(q.effects[i])
	}

	q.effects = q.effects[:0]
}
