package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderError reports a failed compile or link. Stage is "vertex",
// "fragment" or "link"; Log is the driver's info log.
type ShaderError struct {
	Program string
	Stage   string
	Log     string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("linking %s program: %s", e.Program, e.Log)
	}
	return fmt.Sprintf("compiling %s %s shader: %s", e.Program, e.Stage, e.Log)
}

// CompileProgram compiles and links the named vertex/fragment pair.
// Failures are returned as *ShaderError.
func CompileProgram(name, vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileStage(name, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(name, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
		gl.DeleteProgram(program)
		return 0, &ShaderError{Program: name, Stage: "link", Log: infoLog(buf)}
	}

	return program, nil
}

func compileStage(program string, shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &buf[0])
		gl.DeleteShader(shader)
		return 0, &ShaderError{Program: program, Stage: stageName(shaderType), Log: infoLog(buf)}
	}

	return shader, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", shaderType)
	}
}

// infoLog trims the NUL terminator and trailing newlines GL leaves in logs.
func infoLog(buf []byte) string {
	return strings.TrimRight(string(buf), "\x00 \r\n")
}

// uniform returns the location of name in program, or -1 if it is inactive.
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
