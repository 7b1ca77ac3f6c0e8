package builder

// IterationSelector names one instance of a user annotation to window the
// trace to, e.g. {Annotation: "train_step", Instance: 3} for the fourth
// occurrence of a "train_step" span. The zero value selects the whole
// trace.
type IterationSelector struct {
	Annotation string
	Instance   uint64
}

// IsEmpty reports whether s selects the whole trace rather than one
// annotation instance.
func (s IterationSelector) IsEmpty() bool {
	return s.Annotation == ""
}
