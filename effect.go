package glint

import "github.com/tobyauld/glint/internal"

type Effect struct {
	effect *internal.Effect
}

// EffectOptions tunes an effect. Recursive allows the effect to re-queue
// itself by writing one of its own dependencies during its run; without it
// such writes still change the value but do not re-queue the effect, which
// prevents runaway loops.
type EffectOptions struct {
	Recursive bool
}

// NewEffect creates a reactive effect that runs once immediately and again
// whenever its dependencies change.
func NewEffect(fn func()) *Effect {
	return NewEffectWithOptions(fn, EffectOptions{})
}

func NewEffectWithOptions(fn func(), opts EffectOptions) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(fn, opts.Recursive),
	}
}

// Stop detaches the effect from every dependency and runs its cleanups.
// Stopping twice is a no-op.
func (e *Effect) Stop() {
	e.effect.Stop()
}
