package ds

import (
	"strconv"
	"strings"
)

// Resolve looks up a dotted path of entry names, such as "render.light[1].color".
// A segment of the form name[i] selects the i-th Block of a Container (or a
// bare Block for i == 0). A Container reached without an index in the middle
// of a path descends into its first Block.
func (b *Block) Resolve(path string) (Node, bool) {
	if path == "" {
		return b, true
	}

	cur := b

	segs := strings.Split(path, ".")
	for i, seg := range segs {
		name, index, indexed := splitIndex(seg)

		var n Node
		if indexed {
			blk := cur.BlockAt(name, index)
			if blk == nil {
				return nil, false
			}

			n = blk
		} else {
			n = cur.Get(name)
			if n == nil {
				return nil, false
			}
		}

		if i == len(segs)-1 {
			return n, true
		}

		switch n := n.(type) {
		case *Block:
			cur = n
		case *Container:
			if cur = n.At(0); cur == nil {
				return nil, false
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// splitIndex splits "name[i]" into its parts. Segments without a well-formed
// trailing index are returned unchanged.
func splitIndex(seg string) (string, int, bool) {
	if !strings.HasSuffix(seg, "]") {
		return seg, 0, false
	}

	open := strings.LastIndexByte(seg, '[')
	if open < 0 {
		return seg, 0, false
	}

	i, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil || i < 0 {
		return seg, 0, false
	}

	return seg[:open], i, true
}
