package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(16)

	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)

	BorderWidth         = float32(1.5)
	BorderWidthSelected = float32(3.0)

	SlotSize   = float32(64)
	SlotGap    = float32(8)
	SlotMargin = float32(24)
)

func DrawPanel(rect rl.Rectangle) {
	if Skin.Panel.Tex.ID != 0 {
		DrawNineSlice(Skin.Panel, rect, rl.White)
		return
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, Panel)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, Border)
}

// DrawSlot draws one hotbar slot. fill is the rarity colour of the held item
// and is ignored for empty slots.
func DrawSlot(rect rl.Rectangle, fill rl.Color, empty, selected bool, icon rl.Texture2D, label string) {
	bg := fill
	if empty {
		bg = EmptySlot
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, bg)

	stroke, width := Border, BorderWidth
	if selected {
		stroke, width = AccentGold, BorderWidthSelected
	}
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, width, stroke)

	if !empty && icon.ID != 0 {
		inset := PaddingS
		dest := rl.NewRectangle(rect.X+inset, rect.Y+inset, rect.Width-2*inset, rect.Height-2*inset)
		src := rl.NewRectangle(0, 0, float32(icon.Width), float32(icon.Height))
		rl.DrawTexturePro(icon, src, dest, rl.Vector2{}, 0, rl.White)
	}
	if label != "" {
		DrawText(label, int32(rect.X+PaddingXS), int32(rect.Y+PaddingXS/2), Type.Slot, TextPrimary)
	}
}

// DrawButton draws a flat button in fill with an optional centred label and
// text image.
func DrawButton(rect rl.Rectangle, fill rl.Color, label string, textImage rl.Texture2D) {
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, Border)

	if textImage.ID != 0 {
		w, h := float32(textImage.Width), float32(textImage.Height)
		scale := min((rect.Width-2*PaddingS)/w, (rect.Height-2*PaddingXS)/h)
		dest := rl.NewRectangle(rect.X+(rect.Width-w*scale)/2, rect.Y+(rect.Height-h*scale)/2, w*scale, h*scale)
		rl.DrawTexturePro(textImage, rl.NewRectangle(0, 0, w, h), dest, rl.Vector2{}, 0, rl.White)
		return
	}
	if label == "" {
		return
	}
	size := Type.Body
	labelW := MeasureText(label, size)
	x := int32(rect.X + (rect.Width-float32(labelW))/2)
	y := int32(rect.Y + (rect.Height-float32(size))/2)
	DrawText(label, x, y, size, Contrast(fill))
}

// Contrast picks dark or light text for legibility on bg.
func Contrast(bg rl.Color) rl.Color {
	luma := 0.299*float32(bg.R) + 0.587*float32(bg.G) + 0.114*float32(bg.B)
	if luma > 150 {
		return BG
	}
	return TextPrimary
}

// Mix blends a towards b by t in [0,1].
func Mix(a, b rl.Color, t float32) rl.Color {
	t = max(0, min(1, t))
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
