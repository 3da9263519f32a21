package ds

// Equal reports whether a and b hold the same entries, ignoring entry order.
// Values are equal when they have the same tag, type name and canonical text.
// Containers are compared element by element in order.
func Equal(a, b *Block) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Len() != b.Len() {
		return false
	}

	for k, n := range a.All() {
		m := b.Get(k)
		if m == nil || !equalNode(n, m) {
			return false
		}
	}

	return true
}

func equalNode(n, m Node) bool {
	switch n := n.(type) {
	case Value:
		w, ok := m.(Value)

		return ok && EqualValue(n, w)
	case *Block:
		blk, ok := m.(*Block)

		return ok && Equal(n, blk)
	case *Container:
		c, ok := m.(*Container)
		if !ok || n.Len() != c.Len() {
			return false
		}

		for i, blk := range n.blocks {
			if !Equal(blk, c.blocks[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// EqualValue reports whether two Values have the same tag, type name and
// canonical text.
func EqualValue(v, w Value) bool {
	if v == nil || w == nil {
		return v == w
	}

	return v.Tag() == w.Tag() &&
		v.TypeName() == w.TypeName() &&
		v.String() == w.String()
}
