package emit

// Entry is one manifest entry: the key and value already rendered as Go
// source literals (e.g. `"42"`, `"\"sunday\""`, `"orders.Shipped"`), plus,
// for scalar keys, the numeric index the key maps to — supplied by the
// manifest because the emitter cannot evaluate an arbitrary Go expression
// at generation time to recover it the way a runtime []Entry[K,V] would.
type Entry struct {
	KeyLiteral   string
	ValueLiteral string
	// KeyIndex is used only by EmitScalar, to run the same dense/sparse/
	// general analysis the runtime facade runs.
	KeyIndex uint64
}
