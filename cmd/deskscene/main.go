package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"deskscene/internal/config"
	"deskscene/internal/graphics"
	"deskscene/internal/scene"
	"deskscene/internal/shapes"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	if err := gl.Init(); err != nil {
		panic(err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	shader, err := graphics.NewShaderFromSource(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		panic(err)
	}

	meshes := shapes.NewLibrary()
	textures := graphics.NewTextureRegistry()
	sceneManager := scene.NewManager(shader, meshes, textures)

	// GPU resources live until process teardown
	closer.Bind(func() {
		textures.Destroy()
		meshes.Dispose()
		shader.Delete()
	})
	defer closer.Close()

	gl.Enable(gl.DEPTH_TEST)

	shader.Use()
	sceneManager.PrepareScene()

	width, height := window.GetSize()
	camera := graphics.NewCamera(width, height)
	setupInputHandlers(window, camera)

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - lastTime
		lastTime = now

		camera.ProcessKeyboard(window, dt)

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		shader.SetMat4("view", camera.GetViewMatrix())
		shader.SetMat4("projection", camera.GetProjectionMatrix())
		shader.SetVec3("viewPosition", camera.Position.X(), camera.Position.Y(), camera.Position.Z())

		sceneManager.RenderScene()

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "deskscene", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupInputHandlers(window *glfw.Window, camera *graphics.Camera) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		camera.HandleMouseMovement(xpos, ypos)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		camera.HandleScroll(yoff)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		camera.SetViewport(width, height)
	})
}
