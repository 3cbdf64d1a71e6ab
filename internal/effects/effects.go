// Package effects holds fire-and-forget celebration triggers for
// correct answers. Failures are swallowed; a missed confetti burst must
// never affect the attempt.
package effects

// Celebrator fires a short celebration. Implementations must be cheap
// and must not block the caller.
type Celebrator interface {
	Celebrate()
}

// Null is the no-op celebrator, used in tests and non-interactive runs.
type Null struct{}

func (Null) Celebrate() {}

// Counter records how many times it fired. Test helper.
type Counter struct{ N int }

func (c *Counter) Celebrate() { c.N++ }
