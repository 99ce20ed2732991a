package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/ob6160/Modeller/utils"
)

// NewProgramFromPath compiles and links a vertex/fragment shader pair
// loaded from disk.
func NewProgramFromPath(vertexPath, fragmentPath string) (uint32, error) {
	vertexSource, err := utils.ReadTextFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("read vertex shader %s: %v", vertexPath, err)
	}
	fragmentSource, err := utils.ReadTextFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("read fragment shader %s: %v", fragmentPath, err)
	}
	return NewProgram(vertexSource, fragmentSource)
}

// NewProgram compiles and links a program from in-memory sources.
func NewProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("program link failed: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compile failed: %v", infoLog)
	}
	return shader, nil
}
