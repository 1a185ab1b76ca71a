package yaml

// Node is the in-memory form of a YAML document fragment. It is a closed
// union: a value is either a Scalar, a Sequence, or a Mapping, chosen by the
// producer at construction time. Classification is never inferred from the
// shape of the data, so a mapping whose keys happen to be 0..n-1 stays a
// mapping.
type Node interface {
	node()
}

// Scalar holds a single value: nil, a bool, a string, any integer or float
// type, or an opaque value whose fate is decided by the dump options.
type Scalar struct {
	Value any
}

// Sequence is an ordered list of nodes.
type Sequence []Node

// Mapping is an ordered list of key/value pairs. Keys must be scalar values
// and unique within the mapping.
type Mapping []Pair

// Pair is a single mapping entry.
type Pair struct {
	Key   any
	Value Node
}

func (Scalar) node()   {}
func (Sequence) node() {}
func (Mapping) node()  {}
