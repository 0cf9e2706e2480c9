package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

func TestModeButtonHoverSwapsColourAndImage(t *testing.T) {
	base := rl.NewColor(10, 20, 30, 255)
	b := NewModeButton(rl.NewRectangle(0, 0, 100, 40), "Mine", ModeButtonStyle{
		Color:             base,
		TextImage:         "mine.png",
		InvertedTextImage: "mine_inverted.png",
	})

	var events []bool
	b.OnHover(func(entered bool) { events = append(events, entered) })

	b.Update(rl.NewVector2(50, 20))
	if b.Color() != theme.AccentGold || b.TextImage() != "mine_inverted.png" {
		t.Fatalf("expected hover state, got colour %+v image %q", b.Color(), b.TextImage())
	}
	b.Update(rl.NewVector2(60, 25))
	b.Update(rl.NewVector2(500, 25))
	if b.Color() != base || b.TextImage() != "mine.png" {
		t.Fatalf("expected default state after leave, got colour %+v image %q", b.Color(), b.TextImage())
	}
	if len(events) != 2 || !events[0] || events[1] {
		t.Fatalf("expected enter then leave, got %v", events)
	}
}

func TestModeButtonClickOnlyWhenHovered(t *testing.T) {
	b := NewModeButton(rl.NewRectangle(0, 0, 100, 40), "Build", ModeButtonStyle{})
	clicks := 0
	b.OnClick(func() { clicks++ })

	if b.Click() {
		t.Fatalf("expected click to be ignored while not hovered")
	}
	b.Update(rl.NewVector2(1, 1))
	if !b.Click() || clicks != 1 {
		t.Fatalf("expected hovered click to run handler, got %d", clicks)
	}
}

func TestModeButtonKeepsImageWithoutInvertedVariant(t *testing.T) {
	b := NewModeButton(rl.NewRectangle(0, 0, 10, 10), "Look", ModeButtonStyle{TextImage: "look.png"})
	b.Update(rl.NewVector2(5, 5))
	if b.TextImage() != "look.png" {
		t.Fatalf("expected default image while hovered, got %q", b.TextImage())
	}
}
