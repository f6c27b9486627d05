package subtitle

// represents single subtitle block; the source index is not kept, blocks
// are renumbered on output
type Block struct {
	Range   StartEnd
	Content string // every content line followed by "\n", may be empty
}

// Shift returns a copy of b with its range moved by offset.
func (b Block) Shift(offset Offset) Block {
	b.Range = offset.Apply(b.Range)
	return b
}

// String renders the block without its index, ending in a blank line.
func (b Block) String() string {
	return b.Range.String() + "\n" + b.Content + "\n"
}
