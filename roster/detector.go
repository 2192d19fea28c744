package roster

// Inputs are the configuration values a roster is built from.
type Inputs struct {
	Spec string
	Host string
}

// NeedsRebuild returns true if the roster built from prev is no longer valid for next.
func NeedsRebuild(prev, next Inputs) bool {
	return prev.Spec != next.Spec || prev.Host != next.Host
}

// Detector remembers the inputs of the last rebuild. It is not safe for
// concurrent use; the owner is expected to serialize refresh cycles.
type Detector struct {
	last      Inputs
	committed bool
}

// NeedsRebuild reports whether next differs from the inputs of the last
// committed rebuild. Before the first commit a rebuild is always needed.
func (d *Detector) NeedsRebuild(next Inputs) bool {
	return !d.committed || NeedsRebuild(d.last, next)
}

// Commit records the inputs of a successful rebuild.
func (d *Detector) Commit(inputs Inputs) {
	d.last = inputs
	d.committed = true
}

// Last returns the inputs of the last committed rebuild.
func (d *Detector) Last() (Inputs, bool) {
	return d.last, d.committed
}
