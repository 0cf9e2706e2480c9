package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

// ModeButton is a menu button that swaps to a highlight colour and an
// inverted text image while hovered.
type ModeButton struct {
	Rect  rl.Rectangle
	Label string

	defaultColor      rl.Color
	hoverColor        rl.Color
	textImage         string
	invertedTextImage string

	hovered bool
	onClick func()
	onHover func(entered bool)
}

type ModeButtonStyle struct {
	Color             rl.Color
	HoverColor        rl.Color
	TextImage         string
	InvertedTextImage string
}

func NewModeButton(rect rl.Rectangle, label string, style ModeButtonStyle) *ModeButton {
	if style.HoverColor == (rl.Color{}) {
		style.HoverColor = theme.AccentGold
	}
	if style.Color == (rl.Color{}) {
		style.Color = theme.PanelRaised
	}
	return &ModeButton{
		Rect:              rect,
		Label:             label,
		defaultColor:      style.Color,
		hoverColor:        style.HoverColor,
		textImage:         style.TextImage,
		invertedTextImage: style.InvertedTextImage,
	}
}

func (b *ModeButton) OnClick(fn func()) {
	b.onClick = fn
}

// OnHover is called with true on mouse enter and false on mouse leave.
func (b *ModeButton) OnHover(fn func(entered bool)) {
	b.onHover = fn
}

// Update tracks hover state from the cursor position.
func (b *ModeButton) Update(pos rl.Vector2) {
	inside := pointInRect(pos, b.Rect)
	if inside == b.hovered {
		return
	}
	b.hovered = inside
	if b.onHover != nil {
		b.onHover(inside)
	}
}

// Click runs the click handler when the button is hovered.
func (b *ModeButton) Click() bool {
	if !b.hovered {
		return false
	}
	if b.onClick != nil {
		b.onClick()
	}
	return true
}

func (b *ModeButton) Hovered() bool {
	return b.hovered
}

func (b *ModeButton) Color() rl.Color {
	if b.hovered {
		return b.hoverColor
	}
	return b.defaultColor
}

// TextImage is the label texture for the current state. Without an inverted
// variant the default image is kept on hover.
func (b *ModeButton) TextImage() string {
	if b.hovered && b.invertedTextImage != "" {
		return b.invertedTextImage
	}
	return b.textImage
}

func (b *ModeButton) SetHoverColor(c rl.Color) {
	b.hoverColor = c
}

func (b *ModeButton) Draw() {
	theme.DrawButton(b.Rect, b.Color(), b.Label, theme.Icon(b.TextImage()))
}
