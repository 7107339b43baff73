package formats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshload/pkg/math"
	"github.com/Faultbox/meshload/pkg/mesh"
)

// objRef is an optional 0-based reference into one attribute list.
type objRef struct {
	index int
	ok    bool
}

// objIndexGroup is one face corner: position[/uv[/normal]].
type objIndexGroup struct {
	pos    objRef
	uv     objRef
	normal objRef
}

// parseIndexGroup parses "p", "p/t", "p//n" or "p/t/n". Empty fields are
// absent. Present fields are 1-based in the file and stored 0-based.
func parseIndexGroup(s string, strict bool) (objIndexGroup, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return objIndexGroup{}, fmt.Errorf("%w: index group %q has %d fields", ErrMalformedFace, s, len(parts))
	}

	var g objIndexGroup
	refs := [3]*objRef{&g.pos, &g.uv, &g.normal}
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			if strict {
				return objIndexGroup{}, fmt.Errorf("%w: index %q", ErrMalformedNumber, part)
			}
			var ok bool
			if n, ok = leadingInt(part); !ok {
				continue
			}
		}
		if n < 1 {
			return objIndexGroup{}, fmt.Errorf("%w: index %d (indices start at 1)", ErrIndexOutOfRange, n)
		}
		*refs[i] = objRef{index: n - 1, ok: true}
	}
	return g, nil
}

// leadingInt parses the optionally signed run of digits at the start of s.
// It reports false when s has no leading digits.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// resolveRef looks r up in list, returning def when r is absent. References
// past the end of what has been read so far are an error.
func resolveRef[T any](r objRef, list []T, def T, kind string) (T, error) {
	if !r.ok {
		return def, nil
	}
	if r.index >= len(list) {
		return def, fmt.Errorf("%w: %s %d of %d", ErrIndexOutOfRange, kind, r.index+1, len(list))
	}
	return list[r.index], nil
}

func (d *objDecoder) resolveCorner(g objIndexGroup) (mesh.Vertex, error) {
	pos, err := resolveRef(g.pos, d.positions, math.Vec3{}, "position")
	if err != nil {
		return mesh.Vertex{}, err
	}
	uv, err := resolveRef(g.uv, d.uvs, math.Vec2{}, "uv")
	if err != nil {
		return mesh.Vertex{}, err
	}
	normal, err := resolveRef(g.normal, d.normals, mesh.DefaultNormal, "normal")
	if err != nil {
		return mesh.Vertex{}, err
	}

	v := mesh.NewVertex(pos)
	v.Normal = normal
	v.UV = uv
	return v, nil
}

// decodeFace resolves every corner of a face record and fan-triangulates it
// from the first corner. A triangle comes out unchanged; an n-gon yields
// n-2 triangles, each with its own three vertices.
func (d *objDecoder) decodeFace(groups []string) error {
	if len(groups) < 3 {
		return fmt.Errorf("%w: %d corners", ErrMalformedFace, len(groups))
	}

	d.corners = d.corners[:0]
	for _, s := range groups {
		g, err := parseIndexGroup(s, d.strict)
		if err != nil {
			return err
		}
		v, err := d.resolveCorner(g)
		if err != nil {
			return err
		}
		d.corners = append(d.corners, v)
	}

	for k := 1; k < len(d.corners)-1; k++ {
		d.emitTriangle(d.corners[0], d.corners[k], d.corners[k+1])
	}

	d.faces++
	d.triangles += len(d.corners) - 2
	return nil
}

func (d *objDecoder) emitTriangle(a, b, c mesh.Vertex) {
	base := uint32(len(d.out.Vertices))
	d.out.Vertices = append(d.out.Vertices, a, b, c)
	d.out.Indices = append(d.out.Indices, base, base+1, base+2)
}
