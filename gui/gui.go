package gui

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/inkyblackness/imgui-go/v2"

	"github.com/ob6160/Modeller/gui/renderers"
)

type GUI struct {
	window         *glfw.Window
	context        *imgui.Context
	renderer       *renderers.OpenGL3
	io             imgui.IO
	buttonsPressed [3]bool
	keysDown       [glfw.KeyLast + 1]bool
	time           float64
}

func NewGUI(title string, windowWidth, windowHeight int) (*GUI, error) {
	runtime.LockOSThread()
	var g = new(GUI)

	// Setup imgui
	g.context = imgui.CreateContext(nil)
	g.io = imgui.CurrentIO()

	// Setup glfw + OpenGL
	window, err := g.initialiseGLFW(title, windowWidth, windowHeight)
	if err != nil {
		return nil, err
	}
	g.window = window

	g.installCallbacks()

	// Setup imgui renderer
	renderer, err := renderers.NewOpenGL3(g.io)
	if err != nil {
		return nil, err
	}
	g.renderer = renderer
	return g, nil
}

func (g *GUI) ShouldClose() bool {
	return g.window.ShouldClose()
}

func (g *GUI) SwapBuffers() {
	g.window.SwapBuffers()
}

func (g *GUI) GetSize() (int, int) {
	return g.window.GetSize()
}

// KeyDown reports whether a key is currently held, for per-frame
// camera movement polling.
func (g *GUI) KeyDown(key glfw.Key) bool {
	if key < 0 || int(key) >= len(g.keysDown) {
		return false
	}
	return g.keysDown[key]
}

// CursorPos returns the current mouse position in window coordinates.
func (g *GUI) CursorPos() (float64, float64) {
	return g.window.GetCursorPos()
}

// MouseDown reports whether a mouse button is held and the cursor is
// not captured by an imgui widget.
func (g *GUI) MouseDown(button glfw.MouseButton) bool {
	if g.io.WantCaptureMouse() {
		return false
	}
	return g.window.GetMouseButton(button) == glfw.Press
}

func (g *GUI) Render() {
	w, h := g.window.GetSize()
	displaySize := [2]float32{float32(w), float32(h)}
	fw, fh := g.window.GetFramebufferSize()
	fbSize := [2]float32{float32(fw), float32(fh)}
	g.renderer.Render(displaySize, fbSize, imgui.RenderedDrawData())
}

func (g *GUI) Update() {
	w, h := g.window.GetSize()
	g.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	// Setup time step
	currentTime := glfw.GetTime()
	if g.time > 0 {
		g.io.SetDeltaTime(float32(currentTime - g.time))
	}
	g.time = currentTime

	// Setup inputs
	if g.window.GetAttrib(glfw.Focused) != 0 {
		x, y := g.window.GetCursorPos()
		g.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		g.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i := 0; i < len(g.buttonsPressed); i++ {
		down := g.buttonsPressed[i] || (g.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press)
		g.io.SetMouseButtonDown(i, down)
		g.buttonsPressed[i] = false
	}
}

func (g *GUI) Dispose() {
	g.renderer.Dispose()
	g.context.Destroy()
	g.window.Destroy()
	glfw.Terminate()
}

func (g *GUI) initialiseGLFW(title string, windowWidth, windowHeight int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, err
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)
	return window, nil
}

func (g *GUI) installCallbacks() {
	g.window.SetMouseButtonCallback(g.mouseButtonChange)
	g.window.SetScrollCallback(g.mouseScrollChange)
	g.window.SetKeyCallback(g.keyChange)
	g.window.SetCharCallback(g.charChange)
}

func (g *GUI) mouseScrollChange(w *glfw.Window, xoff float64, yoff float64) {
	g.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
}

var glfwButtonIndexByID = map[glfw.MouseButton]int{
	glfw.MouseButton1: 0,
	glfw.MouseButton2: 1,
	glfw.MouseButton3: 2,
}

var glfwButtonIDByIndex = map[int]glfw.MouseButton{
	0: glfw.MouseButton1,
	1: glfw.MouseButton2,
	2: glfw.MouseButton3,
}

func (g *GUI) mouseButtonChange(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	buttonIndex, known := glfwButtonIndexByID[button]
	if known && (action == glfw.Press) {
		g.buttonsPressed[buttonIndex] = true
	}
}

func (g *GUI) keyChange(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key >= 0 && int(key) < len(g.keysDown) {
		if action == glfw.Press {
			g.keysDown[key] = true
		}
		if action == glfw.Release {
			g.keysDown[key] = false
		}
	}
	if action == glfw.Press {
		g.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		g.io.KeyRelease(int(key))
	}
	// Modifiers are not reliable across systems
	g.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	g.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	g.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	g.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (g *GUI) charChange(w *glfw.Window, char rune) {
	g.io.AddInputCharacters(string(char))
}
