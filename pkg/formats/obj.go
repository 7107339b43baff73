package formats

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Faultbox/meshload/pkg/math"
	"github.com/Faultbox/meshload/pkg/mesh"
)

// OBJ format errors.
var (
	ErrMalformedNumber = errors.New("malformed OBJ number")
	ErrIndexOutOfRange = errors.New("OBJ index out of range")
	ErrMalformedFace   = errors.New("malformed OBJ face")
)

// OBJOptions controls decoder strictness.
type OBJOptions struct {
	// StrictNumbers fails with ErrMalformedNumber on non-numeric fields.
	// When false, a bad attribute field ends the record (it and the fields
	// after it read as zero), a face index uses its leading integer ("2x"
	// is 2, "1.5" is 1) and a face index with no digits is "no reference".
	StrictNumbers bool
}

// OBJMetadata summarizes one decode. Vertices and Indices count what the
// decode appended, not the total length of the caller's buffers.
type OBJMetadata struct {
	Positions int
	UVs       int
	Normals   int
	Faces     int
	Triangles int
	Vertices  int
	Indices   int
	ParseTime time.Duration
}

// DecodeOBJ decodes Wavefront OBJ text and appends the triangulated result
// to out.
//
// Positions are transformed by transform. Normals are transformed by its
// orthonormalized linear part, which is only exact for rotations and
// uniform scale. Faces are fan-triangulated and every face corner becomes
// its own vertex. If the source has no faces the positions are emitted as a
// point list with default normals; if it has faces but no normals, flat face
// normals are generated.
//
// The result is committed to out only if the whole input decodes; on error
// out and meta are left untouched. meta may be nil.
func DecodeOBJ(src string, transform math.Mat4, out *mesh.Buffers, meta *OBJMetadata, opts OBJOptions) error {
	start := time.Now()

	d := &objDecoder{
		transform:       transform,
		normalTransform: transform.Orthonormalized(),
		strict:          opts.StrictNumbers,
	}

	lineNo := 0
	for line := range strings.Lines(src) {
		lineNo++
		if err := d.decodeLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if d.faces == 0 {
		d.emitPointList()
	}
	if d.faces > 0 && len(d.normals) == 0 {
		generateFlatNormals(d.out.Vertices)
	}

	out.Append(&d.out)

	if meta != nil {
		*meta = OBJMetadata{
			Positions: len(d.positions),
			UVs:       len(d.uvs),
			Normals:   len(d.normals),
			Faces:     d.faces,
			Triangles: d.triangles,
			Vertices:  len(d.out.Vertices),
			Indices:   len(d.out.Indices),
			ParseTime: time.Since(start),
		}
	}
	return nil
}

// DecodeOBJFile decodes an OBJ file from disk. See DecodeOBJ.
func DecodeOBJFile(path string, transform math.Mat4, out *mesh.Buffers, meta *OBJMetadata, opts OBJOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading OBJ file: %w", err)
	}
	return DecodeOBJ(string(data), transform, out, meta, opts)
}

// objDecoder holds the per-call accumulators. Indices in out are local to
// this decode and are rebased when committed.
type objDecoder struct {
	transform       math.Mat4
	normalTransform math.Mat4
	strict          bool

	positions []math.Vec3
	uvs       []math.Vec2
	normals   []math.Vec3

	faces     int
	triangles int

	corners []mesh.Vertex
	out     mesh.Buffers
}

func (d *objDecoder) decodeLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		var xyz [3]float32
		if err := d.readFloats(fields[1:], xyz[:]); err != nil {
			return err
		}
		p := math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		d.positions = append(d.positions, d.transform.TransformVec3(p))
	case "vt":
		var uv [2]float32
		if err := d.readFloats(fields[1:], uv[:]); err != nil {
			return err
		}
		d.uvs = append(d.uvs, math.Vec2{X: uv[0], Y: uv[1]})
	case "vn":
		var xyz [3]float32
		if err := d.readFloats(fields[1:], xyz[:]); err != nil {
			return err
		}
		n := math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		d.normals = append(d.normals, d.normalTransform.TransformDirection(n))
	case "f":
		return d.decodeFace(fields[1:])
	}
	return nil
}

// readFloats fills dst from fields in order. Missing fields stay zero and
// extra fields are ignored. In permissive mode reading stops at the first
// field that does not parse (including out-of-range values), leaving it and
// every later component at zero.
func (d *objDecoder) readFloats(fields []string, dst []float32) error {
	for i := range dst {
		if i >= len(fields) {
			return nil
		}
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			if d.strict {
				return fmt.Errorf("%w: %q", ErrMalformedNumber, fields[i])
			}
			return nil
		}
		dst[i] = float32(f)
	}
	return nil
}

// emitPointList emits one vertex and one index per raw position.
func (d *objDecoder) emitPointList() {
	for _, p := range d.positions {
		d.out.Indices = append(d.out.Indices, uint32(len(d.out.Vertices)))
		d.out.Vertices = append(d.out.Vertices, mesh.NewVertex(p))
	}
}

// generateFlatNormals assigns each consecutive vertex triple the normal of
// the triangle it forms. A trailing partial triple keeps its normals.
func generateFlatNormals(vertices []mesh.Vertex) {
	for i := 0; i+2 < len(vertices); i += 3 {
		p0 := vertices[i].Position
		p1 := vertices[i+1].Position
		p2 := vertices[i+2].Position

		n := p1.Sub(p0).Cross(p2.Sub(p1)).Normalize()

		vertices[i].Normal = n
		vertices[i+1].Normal = n
		vertices[i+2].Normal = n
	}
}
