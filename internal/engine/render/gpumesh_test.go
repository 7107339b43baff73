package render

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshload/pkg/mesh"
)

func TestVertexLayout(t *testing.T) {
	layout := VertexLayout()

	want := []struct {
		size   int32
		typ    uint32
		offset uintptr
	}{
		{3, gl.FLOAT, 0},
		{3, gl.FLOAT, 12},
		{4, gl.UNSIGNED_BYTE, 24},
		{2, gl.FLOAT, 28},
	}

	if len(layout) != len(want) {
		t.Fatalf("expected %d attributes, got %d", len(want), len(layout))
	}
	for i, w := range want {
		a := layout[i]
		if a.Location != uint32(i) {
			t.Errorf("attribute %d: expected location %d, got %d", i, i, a.Location)
		}
		if a.Size != w.size || a.Type != w.typ || a.Offset != w.offset {
			t.Errorf("attribute %d: got %+v, want size %d type %d offset %d", i, a, w.size, w.typ, w.offset)
		}
	}
	if !layout[2].Normalized {
		t.Error("color attribute should be normalized")
	}
}

func TestVertexStride(t *testing.T) {
	if VertexStride != 36 {
		t.Errorf("expected 36-byte vertices, got %d", VertexStride)
	}
}

func TestPrimitiveMode(t *testing.T) {
	if PrimitiveMode(0) != gl.POINTS {
		t.Error("expected points for a mesh without faces")
	}
	if PrimitiveMode(3) != gl.TRIANGLES {
		t.Error("expected triangles for a mesh with faces")
	}
}

func TestUploadEmpty(t *testing.T) {
	// Rejected before any GL call, so no context is needed.
	if _, err := Upload(&mesh.Buffers{}, gl.TRIANGLES); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("expected ErrEmptyMesh, got %v", err)
	}
}
