package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v2"
	"github.com/xlab/closer"

	"github.com/ob6160/Modeller/core"
	"github.com/ob6160/Modeller/facade"
	"github.com/ob6160/Modeller/generators"
	"github.com/ob6160/Modeller/gui"
	"github.com/ob6160/Modeller/utils"
)

const (
	windowWidth      = 1200
	windowHeight     = 800
	vertexShaderPath = "./shaders/main.vert"
	fragShaderPath   = "./shaders/main.frag"

	moveSpeed = 12.0 // units per second
	turnSpeed = 90.0 // degrees per second
)

// overlay is a translucent object drawn after the opaque pass.
type overlay struct {
	object *core.Object
	alpha  float32
}

type State struct {
	Program  uint32
	Uniforms map[string]int32 //name -> handle
	Camera   *core.CameraState
	Viewport *core.ViewportState
	Scene    core.Scene
	Overlays []overlay

	LightPos   mgl32.Vec3
	LightColor mgl32.Vec3

	// Animated objects, poked every frame.
	SpinCube    *core.Object
	OrbitSphere *core.Object
	Angle       float32

	// Shininess of the query sphere, published by the console reader.
	QueryShininess *utils.AtomicFloat32
	QuerySphere    *core.Object

	MidpointGen    *generators.MidpointDisplacement
	Spread, Reduce float32
	TerrainMesh    *core.Mesh
	Terrain        *core.Object
}

func setupUniforms(state *State) {
	var program = state.Program
	gl.UseProgram(program)

	for _, name := range []string{
		"model", "view", "projection",
		"lightPos", "viewPos", "lightColor",
		"objectColor", "shininess", "alpha", "useTexture", "tex",
	} {
		state.Uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	gl.Uniform1i(state.Uniforms["tex"], 0)
}

func updateFrameUniforms(state *State) {
	projection := state.Viewport.Projection(state.Camera)
	view := state.Camera.ViewMatrix()

	gl.UniformMatrix4fv(state.Uniforms["projection"], 1, false, &projection[0])
	gl.UniformMatrix4fv(state.Uniforms["view"], 1, false, &view[0])
	gl.Uniform3fv(state.Uniforms["lightPos"], 1, &state.LightPos[0])
	gl.Uniform3fv(state.Uniforms["lightColor"], 1, &state.LightColor[0])
	viewPos := state.Camera.Position
	gl.Uniform3fv(state.Uniforms["viewPos"], 1, &viewPos[0])
}

func drawObject(state *State, obj *core.Object, alpha float32) {
	model := obj.ModelMatrix()
	gl.UniformMatrix4fv(state.Uniforms["model"], 1, false, &model[0])
	color := obj.Color
	gl.Uniform3fv(state.Uniforms["objectColor"], 1, &color[0])
	gl.Uniform1f(state.Uniforms["shininess"], obj.Shininess)
	gl.Uniform1f(state.Uniforms["alpha"], alpha)
	if obj.Mesh.Texture != 0 {
		gl.Uniform1i(state.Uniforms["useTexture"], 1)
	} else {
		gl.Uniform1i(state.Uniforms["useTexture"], 0)
	}
	obj.Mesh.Draw()
}

// buildBuilding adds one office block with five styled window rows and
// two roof slabs.
func buildBuilding(state *State, cube *core.Mesh, pos mgl32.Vec3) {
	half := mgl32.Vec3{12, 6.5, 1}

	building := core.NewObject(cube, pos, mgl32.Vec3{255.0 / 255.0, 245.0 / 255.0, 227.0 / 255.0})
	building.Scale = mgl32.Vec3{half.X() * 2, half.Y() * 2, half.Z() * 2}
	state.Scene.Add(building)

	winColor1 := mgl32.Vec3{137.0 / 255.0, 144.0 / 255.0, 196.0 / 255.0}
	winColor2 := mgl32.Vec3{65.0 / 255.0, 67.0 / 255.0, 82.0 / 255.0}
	winColor3 := mgl32.Vec3{201.0 / 255.0, 206.0 / 255.0, 242.0 / 255.0}
	winColor4 := mgl32.Vec3{201.0 / 255.0, 242.0 / 255.0, 233.0 / 255.0}
	winColor5 := mgl32.Vec3{155.0 / 255.0, 189.0 / 255.0, 181.0 / 255.0}

	rows := []struct {
		offsetY float32
		paneH   float32
		styles  []facade.WindowStyle
	}{
		{2.2, 2.3, []facade.WindowStyle{
			facade.Split(winColor3, 0.1, winColor2),
			facade.Solid(winColor1),
			facade.Split(winColor3, 0.1, winColor1),
			facade.Solid(winColor3),
			facade.Split(winColor3, 0.6, winColor1),
			facade.Split(winColor3, 0.6, winColor1),
			facade.Solid(winColor3),
		}},
		{0.4, 0.7, []facade.WindowStyle{
			facade.Solid(winColor2),
			facade.Split(winColor1, 0.5, winColor2),
			facade.Split(winColor1, 0.5, winColor2),
			facade.Split(winColor1, 0.5, winColor2),
			facade.Split(winColor1, 0.5, winColor2),
			facade.Split(winColor1, 0.5, winColor2),
			facade.Split(winColor1, 0.5, winColor2),
		}},
		{-0.4, 0.7, []facade.WindowStyle{facade.Solid(winColor4)}},
		{-2.0, 2.3, []facade.WindowStyle{
			facade.Split(winColor4, 0.64, winColor2),
			facade.Split(winColor4, 0.35, winColor2),
			facade.Solid(winColor4),
			facade.Split(winColor4, 0.17, winColor2),
			facade.Split(winColor4, 0.8, winColor2),
			facade.Split(winColor4, 0.85, winColor2),
			facade.Split(winColor4, 0.90, winColor2),
		}},
		{-4.6, 2.3, []facade.WindowStyle{facade.Solid(winColor5)}},
	}

	for _, row := range rows {
		quads := facade.WindowGrid(facade.WindowGridParams{
			Rows: 1, Cols: 7,
			BuildingCenter: pos,
			HalfExtents:    half,
			Offset:         mgl32.Vec2{-2.7, row.offsetY},
			Spacing:        mgl32.Vec2{0.08, 0.08},
			PaneWidth:      2.0, PaneHeight: row.paneH,
			Styles: row.styles,
		})
		state.Scene.Add(facade.QuadObjects(quads, 80)...)
	}

	// Roof slabs: a flush layer and a dark trim band above it.
	topY := pos.Y() + half.Y()
	roof := core.NewObject(cube, mgl32.Vec3{pos.X(), topY + 0.15, pos.Z()}, building.Color)
	roof.Scale = mgl32.Vec3{24, 0.3, 8}
	trim := core.NewObject(cube, mgl32.Vec3{pos.X(), topY + 0.25 + 0.15, pos.Z()}, mgl32.Vec3{65.0 / 255.0, 65.0 / 255.0, 65.0 / 255.0})
	trim.Scale = mgl32.Vec3{24, 0.3, 8}
	state.Scene.Add(roof, trim)
}

// buildRoom lays out the interior: the frame row with glass, curtains,
// pull cords, the lower wall with its baseboard, the surrounding shell
// and the floor.
func buildRoom(state *State, cube, sphere *core.Mesh, curtainTexture, carpetTexture uint32) {
	const (
		frameWidth            = 15.4
		frameHeight           = 14.0
		frameDepth            = 0.12
		frameBorder           = 0.28
		frameDivider          = 0.25
		frameFrontFaceZ       = -6.0
		frameCenterY          = 6.5
		originalFrameCenterX  = -2.75 // shifted half a unit left with wall and curtains
		glassAlpha            = 0.5
		glassForwardOffset    = 0.02
		curtainOverlayAlpha   = 0.1
		curtainForwardOffset  = 0.015
		baseBottomBandHeight  = 0.38
		curtainHeightTrim     = 1.0
	)

	specs := []facade.FrameSpec{
		{Width: frameWidth, Middle: true},
		{Width: frameWidth, Middle: true},
		{Width: frameWidth, Middle: true},
		{Width: frameWidth, Middle: true},
		{Width: frameWidth, Middle: true},
		{Width: frameWidth * 0.5, Middle: false},
	}
	const anchorIndex = 3
	slots := facade.LayoutFrameRow(specs, anchorIndex, originalFrameCenterX)
	dims := facade.FrameDimensions{
		CenterY:          frameCenterY,
		FrontFaceZ:       frameFrontFaceZ,
		Height:           frameHeight,
		Depth:            frameDepth,
		BorderThickness:  frameBorder,
		DividerThickness: frameDivider,
	}

	glassMesh := core.NewMesh(true)
	for _, slot := range slots {
		state.Scene.Add(facade.FrameObjects(slot, dims, cube)...)
		facade.GlassOverlay(slot, dims, glassForwardOffset).AppendTo(glassMesh)
	}
	glass := core.NewObject(glassMesh, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	glass.Shininess = 120
	state.Overlays = append(state.Overlays, overlay{glass, glassAlpha})

	frameTopY := dims.CenterY + frameHeight/2
	frameBottomY := dims.CenterY - frameHeight/2
	curtainCenterZ := float32(frameFrontFaceZ + frameDepth/2 + 0.05)

	// One curtain per frame except the camera-facing anchor frame.
	curtains := []struct {
		slot        int
		height      float32
		bandHeight  float32
		bandBottomY float32
	}{
		{0, frameHeight*0.52 - curtainHeightTrim, baseBottomBandHeight * 1.08, frameBottomY + 1.14},
		{1, frameHeight*0.60 - curtainHeightTrim, baseBottomBandHeight * 0.92, frameBottomY},
		{2, frameHeight*0.45 - curtainHeightTrim, baseBottomBandHeight, frameBottomY + 2.02},
		{4, frameHeight - curtainHeightTrim, baseBottomBandHeight, frameBottomY},
		{5, frameHeight*0.85 - curtainHeightTrim, baseBottomBandHeight, frameBottomY},
	}
	for _, c := range curtains {
		segment := facade.BuildCurtainSegment(facade.CurtainParams{
			LeftX:          slots[c.slot].Left,
			Width:          slots[c.slot].Width,
			TopY:           frameTopY,
			Height:         c.height,
			CenterZ:        curtainCenterZ,
			Depth:          0.03,
			BandHeight:     c.bandHeight,
			BandBottomY:    c.bandBottomY,
			MinBandBottomY: frameBottomY,
			OverlayOffset:  curtainForwardOffset,
		}, cube)
		if segment.Empty() {
			continue
		}
		state.Scene.Add(segment.Panel, segment.Band)
		for _, q := range segment.Overlays {
			m := core.NewMesh(true)
			q.AppendTo(m)
			m.Texture = curtainTexture
			obj := core.NewObject(m, mgl32.Vec3{}, q.Color)
			state.Overlays = append(state.Overlays, overlay{obj, curtainOverlayAlpha})
		}
	}

	// Blinds pull cords hang beside the right main curtain.
	cordZ := float32(frameFrontFaceZ + frameDepth + 0.05)
	rightMainLeftX := slots[4].Left
	for _, cord := range []struct {
		x, topY, length float32
		knob            bool
	}{
		{rightMainLeftX - 0.08, frameTopY, 11.25 - (frameHeight - frameTopY), true},
		{rightMainLeftX - 0.08, frameHeight - 11.25, 1.25, false},
		{rightMainLeftX - 0.23, frameTopY, 12.0 - (frameHeight - frameTopY), true},
		{rightMainLeftX - 0.23, frameHeight - 12.0, 1.0, true},
		{rightMainLeftX - 0.23, frameHeight - 13.0, 1.0, false},
	} {
		state.Scene.Add(facade.CordBeads(cord.x, cord.topY, cordZ, cord.length, 0.03, cord.knob, sphere)...)
	}

	// Lower wall under the frame row, spanning exactly the row width.
	rowLeft, rowRight, rowWidth := facade.FrameRowSpan(slots)
	wallColor := mgl32.Vec3{225.0 / 255.0, 184.0 / 255.0, 142.0 / 255.0}
	wallTopY := frameBottomY
	wallBottomY := float32(3.25 - 6.5 - 3.0)
	wallHeight := wallTopY - wallBottomY
	wallCenterX := (rowLeft + rowRight) / 2
	wallCenterZ := float32(frameFrontFaceZ-0.01) + frameDepth/2

	wall := core.NewObject(cube, mgl32.Vec3{wallCenterX, wallBottomY + wallHeight/2, wallCenterZ}, wallColor)
	wall.Scale = mgl32.Vec3{rowWidth, wallHeight, frameDepth}
	state.Scene.Add(wall)

	// Rubber baseboard, slightly proud of the wall face.
	baseboardHeight := float32(0.70)
	baseboardDepth := float32(frameDepth + 0.03)
	baseboard := core.NewObject(cube,
		mgl32.Vec3{wallCenterX, wallBottomY + baseboardHeight/2, wallCenterZ + 0.015},
		mgl32.Vec3{90.0 / 255.0, 94.0 / 255.0, 98.0 / 255.0})
	baseboard.Scale = mgl32.Vec3{rowWidth, baseboardHeight, baseboardDepth}
	baseboard.Shininess = 20
	state.Scene.Add(baseboard)

	// Surrounding shell: side walls, back wall, floor slab and ceiling.
	shellThickness := float32(frameDepth)
	shellBottomY := wallBottomY
	shellTopY := wallTopY + frameHeight
	shellHeight := shellTopY - shellBottomY
	shellCenterY := shellBottomY + shellHeight/2
	sideWallSpan := rowWidth

	shellWall := func(pos, scale mgl32.Vec3) {
		w := core.NewObject(cube, pos, wallColor)
		w.Scale = scale
		state.Scene.Add(w)
	}
	shellWall(
		mgl32.Vec3{rowLeft + shellThickness/2, shellCenterY, wallCenterZ + sideWallSpan/2},
		mgl32.Vec3{shellThickness, shellHeight, sideWallSpan})
	shellWall(
		mgl32.Vec3{rowRight - shellThickness/2, shellCenterY, wallCenterZ + sideWallSpan/2},
		mgl32.Vec3{shellThickness, shellHeight, sideWallSpan})
	shellWall(
		mgl32.Vec3{wallCenterX, shellCenterY, wallCenterZ + sideWallSpan},
		mgl32.Vec3{rowWidth, shellHeight, shellThickness})
	shellWall(
		mgl32.Vec3{wallCenterX, shellBottomY + shellThickness/2, wallCenterZ + sideWallSpan/2},
		mgl32.Vec3{rowWidth, shellThickness, sideWallSpan})
	shellWall(
		mgl32.Vec3{wallCenterX, shellTopY - shellThickness/2, wallCenterZ + sideWallSpan/2},
		mgl32.Vec3{rowWidth, shellThickness, sideWallSpan})

	// Checkerboard over the interior floor.
	floorY := shellBottomY + shellThickness + 0.001
	light, dark := core.NewCheckerboard(
		rowLeft+shellThickness, rowRight-shellThickness,
		floorY,
		wallCenterZ, wallCenterZ+sideWallSpan-shellThickness, 16)
	state.Scene.Add(
		core.NewObject(light, mgl32.Vec3{}, mgl32.Vec3{0.85, 0.85, 0.85}),
		core.NewObject(dark, mgl32.Vec3{}, mgl32.Vec3{0.2, 0.2, 0.25}))

	// Tiled carpet on top of the checker floor, toward the back half.
	carpet := core.NewQuadXZ(
		rowLeft+shellThickness, rowRight-shellThickness,
		floorY+0.002,
		wallCenterZ+sideWallSpan/2, wallCenterZ+sideWallSpan-shellThickness, 1.2)
	carpet.Texture = carpetTexture
	carpetObj := core.NewObject(carpet, mgl32.Vec3{}, mgl32.Vec3{0.68, 0.68, 0.68})
	carpetObj.Shininess = 8
	state.Scene.Add(carpetObj)
}

// buildShowpieces adds the animated display objects and the query
// sphere whose shininess follows console input.
func buildShowpieces(state *State, cube, sphere *core.Mesh) {
	pedestal := core.NewObject(core.NewCylinder(1.2, 2.5, 32), mgl32.Vec3{-8, -5, 2}, mgl32.Vec3{0.6, 0.6, 0.65})
	state.Scene.Add(pedestal)

	state.SpinCube = core.NewObject(cube, mgl32.Vec3{-8, -2.6, 2}, mgl32.Vec3{0.8, 0.3, 0.3})
	state.SpinCube.Scale = mgl32.Vec3{1.4, 1.4, 1.4}
	state.Scene.Add(state.SpinCube)

	state.OrbitSphere = core.NewObject(sphere, mgl32.Vec3{-8, -1, 2}, mgl32.Vec3{0.95, 0.8, 0.2})
	state.OrbitSphere.Scale = mgl32.Vec3{0.5, 0.5, 0.5}
	state.Scene.Add(state.OrbitSphere)

	state.QuerySphere = core.NewObject(sphere, mgl32.Vec3{4, -4, 2}, mgl32.Vec3{0.3, 0.6, 0.9})
	state.QuerySphere.Scale = mgl32.Vec3{1.5, 1.5, 1.5}
	state.Scene.Add(state.QuerySphere)
}

// buildTerrain adds a midpoint-displacement backdrop behind the
// buildings, sampled bilinearly into a height-field mesh.
func buildTerrain(state *State) {
	state.MidpointGen.Generate(state.Spread, state.Reduce)
	sampler := generators.NewSampler(state.MidpointGen, 18)
	const terrainSize = 240
	state.TerrainMesh = core.NewHeightField(sampler.HeightFunc(terrainSize), 128, terrainSize)
	state.Terrain = core.NewObject(state.TerrainMesh, mgl32.Vec3{0, -12, -90}, mgl32.Vec3{0.35, 0.5, 0.3})
	state.Terrain.Shininess = 4
	state.Scene.Add(state.Terrain)
}

// regenerateTerrain reshapes the backdrop in place and re-uploads it.
func regenerateTerrain(state *State) {
	state.MidpointGen.Generate(state.Spread, state.Reduce)
	sampler := generators.NewSampler(state.MidpointGen, 18)
	const terrainSize = 240
	fresh := core.NewHeightField(sampler.HeightFunc(terrainSize), 128, terrainSize)
	state.TerrainMesh.Vertices = fresh.Vertices
	state.TerrainMesh.Indices = fresh.Indices
	state.TerrainMesh.Construct()
}

// readShininessQueries forwards console shininess values to the render
// loop. The cell starts at -1 meaning no query yet; zero or negative
// input ends the prompt loop without quitting the program.
func readShininessQueries(value *utils.AtomicFloat32) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("enter shininess value (1-1000, 0 to quit the prompt):")
	for scanner.Scan() {
		text := scanner.Text()
		parsed, err := strconv.ParseFloat(text, 32)
		if err != nil {
			log.Printf("ignoring %q: %v", text, err)
			continue
		}
		v := float32(parsed)
		if v <= 0 {
			fmt.Println("query input ended")
			return
		}
		if v > 1000 {
			v = 1000
		}
		value.Store(v)
		fmt.Printf("query sphere updated: shininess = %.1f\n", v)
	}
}

func handleCameraKeys(g *gui.GUI, camera *core.CameraState, dt float32) {
	if g.KeyDown(glfw.KeyW) {
		camera.MoveForward(moveSpeed * dt)
	}
	if g.KeyDown(glfw.KeyS) {
		camera.MoveForward(-moveSpeed * dt)
	}
	if g.KeyDown(glfw.KeyA) {
		camera.Strafe(-moveSpeed * dt)
	}
	if g.KeyDown(glfw.KeyD) {
		camera.Strafe(moveSpeed * dt)
	}
	if g.KeyDown(glfw.KeyQ) {
		camera.Climb(moveSpeed * dt)
	}
	if g.KeyDown(glfw.KeyE) {
		camera.Climb(-moveSpeed * dt)
	}
	if g.KeyDown(glfw.KeyUp) {
		camera.Look(turnSpeed*dt, 0)
	}
	if g.KeyDown(glfw.KeyDown) {
		camera.Look(-turnSpeed*dt, 0)
	}
	if g.KeyDown(glfw.KeyLeft) {
		camera.Look(0, -turnSpeed*dt)
	}
	if g.KeyDown(glfw.KeyRight) {
		camera.Look(0, turnSpeed*dt)
	}
	if g.KeyDown(glfw.KeyR) {
		camera.Reset()
	}
}

func main() {
	newGUI, err := gui.NewGUI("Modeller Showroom", windowWidth, windowHeight)
	if err != nil {
		log.Fatalln(err)
	}
	defer newGUI.Dispose()

	var state = &State{
		Uniforms:       make(map[string]int32),
		Camera:         core.NewCameraState(mgl32.Vec3{0, 4, 28}, 60),
		Viewport:       &core.ViewportState{Width: windowWidth, Height: windowHeight},
		LightPos:       mgl32.Vec3{10, 30, 25},
		LightColor:     mgl32.Vec3{1, 1, 1},
		QueryShininess: utils.NewAtomicFloat32(-1), // no query yet
		MidpointGen:    generators.NewMidpointDisplacement(128, 128),
		Spread:         0.5,
		Reduce:         0.5,
	}

	program, err := core.NewProgramFromPath(vertexShaderPath, fragShaderPath)
	if err != nil {
		log.Fatalln(err)
	}
	state.Program = program
	setupUniforms(state)

	curtainTexture, err := core.NewTexture("./textures/curtain.png")
	if err != nil {
		log.Println("curtain texture unavailable, overlays render untextured:", err)
	}
	carpetTexture := core.NewCarpetTexture()

	cube := core.NewCube(1)
	sphere := core.NewSphere(1, 24, 16)

	buildBuilding(state, cube, mgl32.Vec3{0, 3.25, -10})
	buildBuilding(state, cube, mgl32.Vec3{16, 3.25, -10})
	buildRoom(state, cube, sphere, curtainTexture, carpetTexture)
	buildShowpieces(state, cube, sphere)
	buildTerrain(state)

	for _, obj := range state.Scene.Objects {
		obj.Mesh.Construct()
	}
	for _, o := range state.Overlays {
		o.object.Mesh.Construct()
	}

	go readShininessQueries(state.QueryShininess)

	exitC := make(chan struct{}, 1)
	doneC := make(chan struct{}, 1)
	closer.Bind(func() {
		close(exitC)
		<-doneC
	})

	last := time.Now()
	fpsTicker := time.NewTicker(time.Second / 60)
	for {
		select {
		case <-exitC:
			fpsTicker.Stop()
			close(doneC)
			return
		case t := <-fpsTicker.C:
			if newGUI.ShouldClose() {
				close(exitC)
				continue
			}
			dt := float32(t.Sub(last).Seconds())
			last = t

			glfw.PollEvents()
			newGUI.Update()
			handleCameraKeys(newGUI, state.Camera, dt)
			animate(state, dt)
			render(newGUI, state)
		}
	}
}

func animate(state *State, dt float32) {
	state.Angle += dt

	state.SpinCube.Rotation = mgl32.Vec3{0, state.Angle * 40, 0}
	state.OrbitSphere.Position = mgl32.Vec3{
		-8 + 2.5*float32(math.Cos(float64(state.Angle))),
		-1,
		2 + 2.5*float32(math.Sin(float64(state.Angle))),
	}
	if q := state.QueryShininess.Load(); q > 0 {
		state.QuerySphere.Shininess = q
	}
}

func (coreState *State) renderUI() {
	imgui.NewFrame()

	if imgui.Begin("Showroom") {
		imgui.Text(fmt.Sprintf("camera (%.1f, %.1f, %.1f)",
			coreState.Camera.Position.X(), coreState.Camera.Position.Y(), coreState.Camera.Position.Z()))
		imgui.Text(fmt.Sprintf("query shininess %.1f", coreState.QueryShininess.Load()))
		imgui.PushItemWidth(80)
		{
			imgui.SliderFloat("FOV", &coreState.Camera.FOV, 20.0, 100.0)
			imgui.SliderFloat("Spread", &coreState.Spread, 0.0, 1.0)
			imgui.SliderFloat("Reduce", &coreState.Reduce, 0.0, 1.0)
			imgui.PopItemWidth()
		}
		if imgui.Button("Regenerate Terrain") {
			regenerateTerrain(coreState)
		}
	}
	imgui.End()
	imgui.EndFrame()
	imgui.Render()
}

func render(g *gui.GUI, coreState *State) {
	width, height := g.GetSize()
	coreState.Viewport.Width = width
	coreState.Viewport.Height = height

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.53, 0.71, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(coreState.Program)
	updateFrameUniforms(coreState)

	for _, obj := range coreState.Scene.Objects {
		drawObject(coreState, obj, 1)
	}

	// Translucent pass: blend enabled, depth writes off so glass and
	// curtain overlays layer correctly.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	for _, o := range coreState.Overlays {
		drawObject(coreState, o.object, o.alpha)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	coreState.renderUI()
	g.Render()

	g.SwapBuffers()
}
