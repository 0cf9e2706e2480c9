package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture. Borders are in source pixels; corners are
// drawn as-is, edges stretch along one axis and the centre along both.
type NineSlice struct {
	Tex    rl.Texture2D
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// DrawNineSlice renders ns into dest, falling back to a flat rectangle when
// the texture is not loaded.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, Panel)
		return
	}
	for _, p := range ninePatches(ns, dest) {
		if p[1].Width <= 0 || p[1].Height <= 0 {
			continue
		}
		rl.DrawTexturePro(ns.Tex, p[0], p[1], rl.Vector2{}, 0, tint)
	}
}

// ninePatches returns {source, destination} pairs, row by row.
func ninePatches(ns NineSlice, dest rl.Rectangle) [9][2]rl.Rectangle {
	sw, sh := float32(ns.Tex.Width), float32(ns.Tex.Height)
	l, r := float32(ns.Left), float32(ns.Right)
	t, b := float32(ns.Top), float32(ns.Bottom)

	dl, dr, dt, db := l, r, t, b
	if dl+dr > dest.Width {
		dl, dr = dest.Width/2, dest.Width/2
	}
	if dt+db > dest.Height {
		dt, db = dest.Height/2, dest.Height/2
	}

	srcX := [3]float32{0, l, sw - r}
	srcW := [3]float32{l, sw - l - r, r}
	srcY := [3]float32{0, t, sh - b}
	srcH := [3]float32{t, sh - t - b, b}
	dstX := [3]float32{dest.X, dest.X + dl, dest.X + dest.Width - dr}
	dstW := [3]float32{dl, dest.Width - dl - dr, dr}
	dstY := [3]float32{dest.Y, dest.Y + dt, dest.Y + dest.Height - db}
	dstH := [3]float32{dt, dest.Height - dt - db, db}

	var out [9][2]rl.Rectangle
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = [2]rl.Rectangle{
				rl.NewRectangle(srcX[col], srcY[row], srcW[col], srcH[row]),
				rl.NewRectangle(dstX[col], dstY[row], dstW[col], dstH[row]),
			}
		}
	}
	return out
}
