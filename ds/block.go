package ds

import (
	"iter"
	"slices"
)

// Block is a set of uniquely named children, each a [Value], a nested
// [*Block] or a [*Container]. Children are kept in insertion order;
// replacing an existing name keeps its position.
//
// The zero Block is empty and usable, with nil Settings.
type Block struct {
	settings *Settings
	keys     []string
	nodes    map[string]Node
}

// NewBlock returns an empty Block bound to s.
func NewBlock(s *Settings) *Block {
	return &Block{settings: s}
}

// Kind returns [KindBlock].
func (*Block) Kind() Kind { return KindBlock }

// Settings returns the Settings the Block is bound to.
func (b *Block) Settings() *Settings { return b.settings }

// AddChild stores n under name and rebinds it to the Block's Settings.
//
// When name is already taken:
//   - a Value or Container replaces the existing entry;
//   - a Block added over a bare Block promotes the entry to a Container
//     holding the old Block followed by the new one;
//   - a Block added over a Container is appended to it;
//   - a Block added over a Value replaces it.
func (b *Block) AddChild(name string, n Node) {
	if n == nil {
		return
	}

	bind(n, b.settings)

	old, ok := b.nodes[name]
	if !ok {
		b.insert(name, n)

		return
	}

	blk, isBlock := n.(*Block)
	if !isBlock {
		b.nodes[name] = n

		return
	}

	switch prev := old.(type) {
	case *Container:
		prev.Append(blk)
	case *Block:
		if prev == blk {
			return
		}

		b.nodes[name] = newContainer(b.settings, prev, blk)
	default:
		b.nodes[name] = n
	}
}

// AddValue constructs a Value of the named type from raw using the Block's
// Settings and stores it under name. It returns nil, leaving the Block
// unchanged, if no factory is registered for typeName.
func (b *Block) AddValue(typeName, name, raw string) Value {
	f, ok := Lookup(typeName)
	if !ok {
		return nil
	}

	v := f(b.settings, raw)
	if v == nil {
		return nil
	}

	b.AddChild(name, v)

	return v
}

// AddBlock returns the bare Block stored under name, creating and inserting
// an empty one if name holds anything else or nothing.
func (b *Block) AddBlock(name string) *Block {
	if blk, ok := b.nodes[name].(*Block); ok {
		return blk
	}

	blk := NewBlock(b.settings)
	b.AddChild(name, blk)

	return blk
}

// Get returns the node stored under name, or nil.
func (b *Block) Get(name string) Node {
	return b.nodes[name]
}

// Value returns the Value stored under name, or nil if name is absent or
// holds a Block or Container.
func (b *Block) Value(name string) Value {
	v, _ := b.nodes[name].(Value)

	return v
}

// Block returns the first Block stored under name. See [Block.BlockAt].
func (b *Block) Block(name string) *Block {
	return b.BlockAt(name, 0)
}

// BlockAt returns the i-th Block stored under name. A Container resolves by
// position; a bare Block only answers i == 0. Anything else yields nil.
func (b *Block) BlockAt(name string, i int) *Block {
	switch n := b.nodes[name].(type) {
	case *Block:
		if i == 0 {
			return n
		}
	case *Container:
		return n.At(i)
	}

	return nil
}

// Blocks iterates the Blocks stored under name: a bare Block once, or every
// element of a Container in order.
func (b *Block) Blocks(name string) iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		switch n := b.nodes[name].(type) {
		case *Block:
			yield(n)
		case *Container:
			for _, blk := range n.blocks {
				if !yield(blk) {
					return
				}
			}
		}
	}
}

// Has reports whether name is taken.
func (b *Block) Has(name string) bool {
	_, ok := b.nodes[name]

	return ok
}

// Remove deletes the entry stored under name and reports whether it existed.
func (b *Block) Remove(name string) bool {
	if _, ok := b.nodes[name]; !ok {
		return false
	}

	delete(b.nodes, name)
	b.keys = slices.DeleteFunc(b.keys, func(k string) bool { return k == name })

	return true
}

// Detach removes the entry holding exactly n, whatever its name, and
// reports whether one was found.
func (b *Block) Detach(n Node) bool {
	for _, k := range b.keys {
		if b.nodes[k] == n {
			return b.Remove(k)
		}
	}

	return false
}

// Len returns the number of entries.
func (b *Block) Len() int { return len(b.keys) }

// IsEmpty reports whether the Block has no entries.
func (b *Block) IsEmpty() bool { return len(b.keys) == 0 }

// Keys returns the entry names in insertion order.
func (b *Block) Keys() []string { return slices.Clone(b.keys) }

// All iterates entries in insertion order.
func (b *Block) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, k := range b.keys {
			if !yield(k, b.nodes[k]) {
				return
			}
		}
	}
}

// Copy returns a deep copy of the Block sharing its Settings.
func (b *Block) Copy() *Block {
	cpy := NewBlock(b.settings)

	for k, n := range b.All() {
		switch n := n.(type) {
		case Value:
			cpy.insert(k, n.Clone())
		case *Block:
			cpy.insert(k, n.Copy())
		case *Container:
			cpy.insert(k, n.copy())
		}
	}

	return cpy
}

func (b *Block) insert(name string, n Node) {
	if b.nodes == nil {
		b.nodes = make(map[string]Node)
	}

	b.nodes[name] = n
	b.keys = append(b.keys, name)
}

// bind rebinds n and everything beneath it to s.
func bind(n Node, s *Settings) {
	if n.Settings() == s {
		return
	}

	switch n := n.(type) {
	case Value:
		n.Bind(s)
	case *Block:
		n.settings = s
		for _, c := range n.nodes {
			bind(c, s)
		}
	case *Container:
		n.settings = s
		for _, blk := range n.blocks {
			bind(blk, s)
		}
	}
}
