package sphereuv

import (
	"math"
	"testing"

	"github.com/Faultbox/sphereuv/pkg/obj"
)

func TestBuffer_Add(t *testing.T) {
	b := NewBuffer()

	if i := b.Add(obj.UV{U: 0.1, V: 0.2}); i != 0 {
		t.Errorf("first add = %d, want 0", i)
	}
	if i := b.Add(obj.UV{U: 0.3, V: 0.2}); i != 1 {
		t.Errorf("second add = %d, want 1", i)
	}
	if i := b.Add(obj.UV{U: 0.1, V: 0.2}); i != 0 {
		t.Errorf("repeat add = %d, want 0", i)
	}
	if len(b.UVs()) != 2 {
		t.Errorf("stored %d uvs, want 2", len(b.UVs()))
	}

	uvs := b.UVs()
	if uvs[0] != (obj.UV{U: 0.1, V: 0.2}) || uvs[1] != (obj.UV{U: 0.3, V: 0.2}) {
		t.Errorf("UVs = %v", uvs)
	}
}

func TestBuffer_NegativeZero(t *testing.T) {
	b := NewBuffer()
	i := b.Add(obj.UV{U: 0, V: 0.5})
	j := b.Add(obj.UV{U: math.Copysign(0, -1), V: 0.5})
	if i != j {
		t.Errorf("-0 and +0 got slots %d and %d", i, j)
	}
}

func TestBuffer_NaN(t *testing.T) {
	b := NewBuffer()
	nan := obj.UV{U: 0, V: math.NaN()}
	if b.Add(nan) == b.Add(nan) {
		t.Error("expected NaN uvs to take separate slots")
	}
	if len(b.UVs()) != 2 {
		t.Errorf("stored %d uvs, want 2", len(b.UVs()))
	}
}
