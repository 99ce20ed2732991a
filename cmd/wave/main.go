// Command wave renders a static sin(x)*cos(z) height field with an
// orbiting camera, as a minimal smoke test for the mesh pipeline.
package main

import (
	"log"
	"math"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"github.com/ob6160/Modeller/core"
	"github.com/ob6160/Modeller/gui"
)

const (
	windowWidth  = 900
	windowHeight = 700
	gridN        = 150
	fieldSize    = 10.0
	orbitRadius  = 12.0
	orbitHeight  = 7.0
)

const vertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
out vec3 FragPos;
out vec3 Normal;
void main() {
	vec4 worldPos = model * vec4(aPos, 1.0);
	FragPos = worldPos.xyz;
	Normal = mat3(transpose(inverse(model))) * aNormal;
	gl_Position = projection * view * worldPos;
}
`

const fragmentShader = `#version 330 core
in vec3 FragPos;
in vec3 Normal;
uniform vec3 lightPos;
uniform vec3 objectColor;
out vec4 FragColor;
void main() {
	vec3 N = normalize(Normal);
	vec3 L = normalize(lightPos - FragPos);
	float ndotl = max(dot(N, L), 0.0);
	vec3 color = objectColor * (0.2 + 0.8 * ndotl);
	FragColor = vec4(color, 1.0);
}
`

func main() {
	g, err := gui.NewGUI("Wave", windowWidth, windowHeight)
	if err != nil {
		log.Fatalln(err)
	}
	defer g.Dispose()

	program, err := core.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		log.Fatalln(err)
	}

	wave := core.NewHeightField(func(x, z float32) float32 {
		return float32(math.Sin(float64(x)) * math.Cos(float64(z)))
	}, gridN, fieldSize)
	wave.Construct()
	surface := core.NewObject(wave, mgl32.Vec3{}, mgl32.Vec3{0.3, 0.55, 0.8})

	gl.UseProgram(program)
	modelUniform := gl.GetUniformLocation(program, gl.Str("model\x00"))
	viewUniform := gl.GetUniformLocation(program, gl.Str("view\x00"))
	projectionUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	lightPosUniform := gl.GetUniformLocation(program, gl.Str("lightPos\x00"))
	objectColorUniform := gl.GetUniformLocation(program, gl.Str("objectColor\x00"))

	projection := mgl32.Perspective(mgl32.DegToRad(50), float32(windowWidth)/windowHeight, 0.1, 100.0)
	lightPos := mgl32.Vec3{6, 10, 6}

	exitC := make(chan struct{}, 1)
	doneC := make(chan struct{}, 1)
	closer.Bind(func() {
		close(exitC)
		<-doneC
	})

	angle := float32(0)
	fpsTicker := time.NewTicker(time.Second / 60)
	for {
		select {
		case <-exitC:
			fpsTicker.Stop()
			close(doneC)
			return
		case <-fpsTicker.C:
			if g.ShouldClose() {
				close(exitC)
				continue
			}
			glfw.PollEvents()
			angle += 0.005

			eye := mgl32.Vec3{
				orbitRadius * float32(math.Cos(float64(angle))),
				orbitHeight,
				orbitRadius * float32(math.Sin(float64(angle))),
			}
			view := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
			model := surface.ModelMatrix()

			gl.Enable(gl.DEPTH_TEST)
			gl.ClearColor(0.08, 0.09, 0.11, 1.0)
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

			gl.UseProgram(program)
			gl.UniformMatrix4fv(modelUniform, 1, false, &model[0])
			gl.UniformMatrix4fv(viewUniform, 1, false, &view[0])
			gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])
			gl.Uniform3fv(lightPosUniform, 1, &lightPos[0])
			color := surface.Color
			gl.Uniform3fv(objectColorUniform, 1, &color[0])
			wave.Draw()

			g.SwapBuffers()
		}
	}
}
