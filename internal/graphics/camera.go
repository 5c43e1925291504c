package graphics

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"deskscene/internal/config"
)

// Camera is a free-flying camera supplying the view and projection matrices
// for each frame. The scene consumes both opaquely through the shader.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees

	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	MoveSpeed float32

	FirstMouse bool
	lastX      float64
	lastY      float64
}

// NewCamera creates a camera looking at the scene from the default viewpoint
func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 5, 14},
		Yaw:         -90,
		Pitch:       -12,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    100.0,
		MoveSpeed:   6.0,
		FirstMouse:  true,
	}
}

// Front returns the unit vector the camera looks along
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// GetViewMatrix returns the view matrix for the current camera pose
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

// GetProjectionMatrix returns the perspective projection matrix
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(config.GetFOV()), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// SetViewport updates the aspect ratio after a window resize
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// HandleMouseMovement turns cursor deltas into yaw/pitch changes
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.FirstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.FirstMouse = false
	}
	xoffset := xpos - c.lastX
	yoffset := c.lastY - ypos
	c.lastX = xpos
	c.lastY = ypos

	sensitivity := config.GetMouseSensitivity()
	c.Yaw += float32(xoffset) * sensitivity
	c.Pitch += float32(yoffset) * sensitivity

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// HandleScroll adjusts the movement speed with the scroll wheel
func (c *Camera) HandleScroll(yoffset float64) {
	c.MoveSpeed += float32(yoffset)
	if c.MoveSpeed < 1 {
		c.MoveSpeed = 1
	}
	if c.MoveSpeed > 25 {
		c.MoveSpeed = 25
	}
}

// ProcessKeyboard applies WASD movement plus Q/E for vertical travel
func (c *Camera) ProcessKeyboard(window *glfw.Window, dt float64) {
	front := c.Front()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	moveDir := mgl32.Vec3{}
	if window.GetKey(glfw.KeyW) == glfw.Press {
		moveDir = moveDir.Add(front)
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		moveDir = moveDir.Sub(front)
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		moveDir = moveDir.Sub(right)
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		moveDir = moveDir.Add(right)
	}
	if window.GetKey(glfw.KeyQ) == glfw.Press {
		moveDir = moveDir.Add(mgl32.Vec3{0, 1, 0})
	}
	if window.GetKey(glfw.KeyE) == glfw.Press {
		moveDir = moveDir.Sub(mgl32.Vec3{0, 1, 0})
	}

	if moveDir.Len() > 0 {
		c.Position = c.Position.Add(moveDir.Normalize().Mul(c.MoveSpeed * float32(dt)))
	}
}
