// Package formats provides decoders for 3D mesh asset formats.
//
// Decoders produce render-ready mesh.Buffers: a flat vertex list with no
// vertex sharing and a triangle index list.
package formats

// Note: Wavefront OBJ is implemented in obj.go (records) and obj_face.go (faces).
