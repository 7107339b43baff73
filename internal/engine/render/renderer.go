package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshload/pkg/math"
)

const meshVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;
layout (location = 3) in vec2 aTexCoord;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec4 vColor;
out vec2 vTexCoord;

void main() {
    gl_Position = uMVP * vec4(aPosition, 1.0);
    gl_PointSize = 3.0;
    vNormal = mat3(uModel) * aNormal;
    vColor = aColor;
    vTexCoord = aTexCoord;
}
`

const meshFragmentShader = `#version 410 core
in vec3 vNormal;
in vec4 vColor;
in vec2 vTexCoord;

uniform vec3 uLightDir;
uniform float uAmbient;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = abs(dot(n, -uLightDir));
    vec3 checker = vec3(0.85 + 0.15 * mod(floor(vTexCoord.x * 8.0) + floor(vTexCoord.y * 8.0), 2.0));
    FragColor = vec4(vColor.rgb * checker * (uAmbient + (1.0 - uAmbient) * diffuse), vColor.a);
}
`

// MeshRenderer draws GPU meshes with a single directional light.
type MeshRenderer struct {
	program  uint32
	locMVP   int32
	locModel int32
	locLight int32
	locAmb   int32

	LightDir math.Vec3
	Ambient  float32
}

// NewMeshRenderer compiles the mesh shader program.
func NewMeshRenderer() (*MeshRenderer, error) {
	program, err := CompileProgram("mesh", meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("creating mesh renderer: %w", err)
	}

	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return &MeshRenderer{
		program:  program,
		locMVP:   uniform(program, "uMVP"),
		locModel: uniform(program, "uModel"),
		locLight: uniform(program, "uLightDir"),
		locAmb:   uniform(program, "uAmbient"),
		LightDir: math.Vec3{X: -0.4, Y: -1, Z: -0.6}.Normalize(),
		Ambient:  0.25,
	}, nil
}

// Render draws m with the given view-projection and model matrices.
func (r *MeshRenderer) Render(m *GPUMesh, viewProj, model math.Mat4, wireframe bool) {
	mvp := viewProj.Mul(model)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.Uniform3f(r.locLight, r.LightDir.X, r.LightDir.Y, r.LightDir.Z)
	gl.Uniform1f(r.locAmb, r.Ambient)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	m.Draw()
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Close releases the shader program.
func (r *MeshRenderer) Close() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
