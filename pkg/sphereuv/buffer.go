package sphereuv

import "github.com/Faultbox/sphereuv/pkg/obj"

// Buffer is an append-only list of distinct texture coordinates with a
// reverse index for lookup by value.
type Buffer struct {
	uvs   []obj.UV
	index map[obj.UV]int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		uvs:   make([]obj.UV, 0),
		index: make(map[obj.UV]int),
	}
}

// Add returns the slot holding uv, appending it first if it is new.
// A UV with a NaN component never matches an existing slot.
func (b *Buffer) Add(uv obj.UV) int {
	if i, ok := b.index[uv]; ok {
		return i
	}
	i := len(b.uvs)
	b.uvs = append(b.uvs, uv)
	b.index[uv] = i
	return i
}

// UVs returns the stored coordinates in slot order.
func (b *Buffer) UVs() []obj.UV {
	return b.uvs
}
