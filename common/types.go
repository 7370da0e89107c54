// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// FrameUniforms holds the per-frame values fed to the live program's fixed uniform set.
// The preview driver fills one of these each frame before drawing.
type FrameUniforms struct {
	// Time is the number of seconds elapsed since the session started, bound to u_time.
	Time float32
	// Resolution is the framebuffer size in pixels, bound to u_resolution.
	Resolution [2]float32
	// Mouse is the cursor position normalized to [0, 1] with the Y axis pointing up, bound to u_mouse.
	Mouse [2]float32
}

// NormalizeCursor converts a window-space cursor position into the [0, 1] range used by u_mouse.
// Window coordinates grow downward, so the Y axis is flipped. Positions outside the window are clamped.
//
// Parameters:
//   - x, y: the cursor position in window pixels
//   - width, height: the window size in pixels
//
// Returns:
//   - [2]float32: the normalized cursor position, or {0, 0} for a degenerate window size
func NormalizeCursor(x, y float64, width, height int) [2]float32 {
	if width <= 0 || height <= 0 {
		return [2]float32{}
	}
	nx := clamp01(float32(x / float64(width)))
	ny := clamp01(1 - float32(y/float64(height)))
	return [2]float32{nx, ny}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
