package listfield

// syncGate is the skip-sync flag: armed right before the engine writes the
// committed value, consumed by the next observed change of that value.
type syncGate struct {
	armed bool
}

func (g *syncGate) arm() { g.armed = true }

// consume disarms the gate and reports whether it was armed.
func (g *syncGate) consume() bool {
	armed := g.armed
	g.armed = false
	return armed
}
