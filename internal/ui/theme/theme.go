package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// TextDrawFunc draws HUD text at a pixel position.
type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

// TextMeasureFunc returns the pixel width of HUD text.
type TextMeasureFunc func(text string, fontSize int32) int32

// hudText is the font backend used by every widget in this package. It
// starts on raylib's built-in bitmap font.
var hudText = struct {
	draw    TextDrawFunc
	measure TextMeasureFunc
}{
	draw: func(text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	},
	measure: func(text string, fontSize int32) int32 {
		return int32(rl.MeasureText(text, fontSize))
	},
}

// SetTextRenderer routes slot labels, button captions and HUD lines through
// the client's loaded font. A nil func leaves that half unchanged.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		hudText.draw = draw
	}
	if measure != nil {
		hudText.measure = measure
	}
}

func DrawText(text string, x, y, fontSize int32, clr rl.Color) {
	hudText.draw(text, x, y, fontSize, clr)
}

// MeasureText is used to centre captions and banners.
func MeasureText(text string, fontSize int32) int32 {
	return hudText.measure(text, fontSize)
}
