package debug

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextOrigin is where the FPS text is placed, measured from the top-left
// corner of the frame to the top-left corner of the text.
var TextOrigin = image.Pt(8, 8)

// DrawText draws s onto dst with its top-left corner at pt using the fixed
// 7x13 bitmap face. Text falling outside dst is clipped.
func DrawText(dst *image.RGBA, pt image.Point, s string, c color.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextSize returns the pixel size DrawText covers for s.
func TextSize(s string) image.Point {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	return image.Pt(w, face.Metrics().Height.Ceil())
}

// DrawFPS draws the frame rate at TextOrigin.
func DrawFPS(dst *image.RGBA, fps int, c color.Color) {
	DrawText(dst, TextOrigin, strconv.Itoa(fps), c)
}
