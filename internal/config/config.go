package config

import "sync"

// ViewSettings holds window and camera configuration
type ViewSettings struct {
	mu               sync.RWMutex
	windowWidth      int
	windowHeight     int
	fov              float32 // vertical field of view in degrees
	mouseSensitivity float32
}

var globalViewSettings = &ViewSettings{
	windowWidth:      1000,
	windowHeight:     800,
	fov:              60.0,
	mouseSensitivity: 0.1,
}

// GetWindowSize returns the configured window dimensions
func GetWindowSize() (int, int) {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.windowWidth, globalViewSettings.windowHeight
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}

	globalViewSettings.fov = fov
}

// GetMouseSensitivity returns the mouse look sensitivity
func GetMouseSensitivity() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse look sensitivity
func SetMouseSensitivity(s float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 1.0 {
		s = 1.0
	}

	globalViewSettings.mouseSensitivity = s
}
