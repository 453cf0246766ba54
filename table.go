package consts

// Table maps constant names (without the -- sigil) to resolved values.
// Later declarations of a name overwrite earlier ones within one
// collection pass.
type Table map[string]string

// clone returns an independent copy so that cached tables can be used as
// collection seeds without being mutated.
func (t Table) clone() Table {
	out := make(Table, len(t))
	for name, value := range t {
		out[name] = value
	}
	return out
}
