package systems

import (
	"image/color"

	"github.com/rs/zerolog"
)

// ColoredMessage stores a message with the level it was logged at
type ColoredMessage struct {
	Text  string
	Level zerolog.Level
}

// GetColor returns the color for the message based on its level
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid
	case zerolog.InfoLevel:
		return color.RGBA{100, 149, 237, 255} // Cornflower Blue
	case zerolog.WarnLevel:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
