// voxview is an interactive viewer for the face-instance pipeline: it
// generates demo terrain, meshes it into packed instances on a worker pool,
// and renders the packed stream with the quad shaders.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxquad/internal/config"
	"voxquad/internal/frame"
	"voxquad/internal/meshing"
	"voxquad/internal/profiling"
	"voxquad/internal/render"
	"voxquad/internal/world"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var skyColor = mgl32.Vec3{0.53, 0.70, 0.92}

func init() {
	runtime.LockOSThread()
}

func main() {
	seed := flag.Int64("seed", 1, "terrain seed")
	distance := flag.Int("distance", 8, "render distance in chunks")
	flag.Parse()

	config.SetSeed(*seed)
	config.SetRenderDistance(*distance)

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	renderer, err := render.NewRenderer(
		"assets/shaders/quads/quads.vert",
		"assets/shaders/quads/quads.frag",
	)
	if err != nil {
		log.Fatalf("renderer setup: %v", err)
	}
	defer renderer.Delete()

	gen := world.NewGenerator(config.GetSeed(), config.GetBaseHeight(), config.GetAmplitude(), config.GetOres())
	pool := meshing.NewPool(max(runtime.NumCPU()/2, 1), 256)
	defer pool.Shutdown()

	table := frame.NewTable()
	stream := newStreamer(gen, pool, table, renderer)

	camera := render.NewCamera(windowWidth, windowHeight)
	camera.X, camera.Z = 8, 8
	camera.Y = float64(gen.HeightAt(8, 8)) + 12

	setupInput(window, camera, stream)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(skyColor[0], skyColor[1], skyColor[2], 1)

	runLoop(window, camera, stream, renderer)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

func runLoop(window *glfw.Window, camera *render.Camera, stream *streamer, renderer *render.Renderer) {
	frames := 0
	lastFPSCheck := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		handleMovement(window, camera, dt)

		func() { defer profiling.Track("stream.update")(); stream.update(camera) }()
		func() { defer profiling.Track("stream.drain")(); stream.drain() }()
		stream.syncFrames(renderer)

		fogStart, fogEnd := config.GetFogRange()
		ctx := camera.Context(skyColor, fogStart, fogEnd)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		func() { defer profiling.Track("render.Draw")(); renderer.Draw(ctx) }()

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			fmt.Println("FPS: ", frames, " | ", profiling.TopN(3))
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}
