package config

// Screen layout configuration
const (
	// Logical screen size in pixels. Entity positions are in these units.
	ScreenWidth  = 320
	ScreenHeight = 240

	// WindowScale is the integer zoom from logical pixels to window pixels
	WindowScale = 3

	// Debug overlay layout
	OverlayLineHeight = 16
	OverlayMessages   = 6
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the initial window size
func GetWindowSize() (width, height int) {
	return ScreenWidth * WindowScale, ScreenHeight * WindowScale
}
