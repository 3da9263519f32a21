package ds

// Container is an ordered list of Blocks stored under one name of a parent
// Block. Containers only arise from adding a second Block under a name that
// already holds one.
type Container struct {
	settings *Settings
	blocks   []*Block
}

func newContainer(s *Settings, blocks ...*Block) *Container {
	return &Container{settings: s, blocks: blocks}
}

// Kind returns [KindContainer].
func (*Container) Kind() Kind { return KindContainer }

// Settings returns the Settings the Container is bound to.
func (c *Container) Settings() *Settings { return c.settings }

// Append adds blk to the end of the Container. A nil Block is ignored.
func (c *Container) Append(blk *Block) {
	if blk == nil {
		return
	}

	bind(blk, c.settings)
	c.blocks = append(c.blocks, blk)
}

// At returns the i-th Block, or nil if i is out of range.
func (c *Container) At(i int) *Block {
	if i < 0 || i >= len(c.blocks) {
		return nil
	}

	return c.blocks[i]
}

// Len returns the number of Blocks.
func (c *Container) Len() int { return len(c.blocks) }

// Blocks returns the Container's backing slice. Changes made through it are
// visible to the Container.
func (c *Container) Blocks() []*Block { return c.blocks }

func (c *Container) copy() *Container {
	cpy := newContainer(c.settings)
	for _, blk := range c.blocks {
		if blk == nil {
			cpy.blocks = append(cpy.blocks, nil)

			continue
		}

		cpy.blocks = append(cpy.blocks, blk.Copy())
	}

	return cpy
}
