package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/pet-world/internal/game"
)

var elementPalette = map[game.Element][3]color.RGBA{
	game.ElementFire:    {{R: 255, G: 110, B: 40, A: 235}, {R: 180, G: 40, B: 20, A: 230}, {R: 255, G: 210, B: 90, A: 210}},
	game.ElementWater:   {{R: 60, G: 140, B: 255, A: 235}, {R: 20, G: 70, B: 170, A: 230}, {R: 160, G: 220, B: 255, A: 210}},
	game.ElementGrass:   {{R: 0, G: 230, B: 110, A: 235}, {R: 0, G: 145, B: 60, A: 230}, {R: 120, G: 255, B: 170, A: 210}},
	game.ElementEarth:   {{R: 170, G: 120, B: 70, A: 235}, {R: 110, G: 70, B: 35, A: 230}, {R: 220, G: 180, B: 120, A: 210}},
	game.ElementIce:     {{R: 170, G: 235, B: 255, A: 235}, {R: 90, G: 170, B: 210, A: 230}, {R: 240, G: 250, B: 255, A: 210}},
	game.ElementWind:    {{R: 190, G: 230, B: 200, A: 235}, {R: 120, G: 170, B: 140, A: 230}, {R: 235, G: 255, B: 240, A: 210}},
	game.ElementThunder: {{R: 255, G: 220, B: 40, A: 235}, {R: 190, G: 150, B: 0, A: 230}, {R: 255, G: 250, B: 170, A: 210}},
}

// fullGrowthLevel is the level at which the portrait stops growing.
const fullGrowthLevel = 30

// renderPetPortraitANSI draws the pet as truecolor half-block text. Higher
// levels draw a larger body.
func renderPetPortraitANSI(element game.Element, level, widthChars, heightRows int) string {
	if widthChars < 12 || heightRows < 8 {
		return petASCIIArt(element)
	}
	widthChars = clampInt(widthChars, 12, 44)
	heightRows = clampInt(heightRows, 8, 32)

	w := widthChars
	h := heightRows * 2
	dc := gg.NewContext(w, h)

	// Transparent background so the terminal colour shows through.
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	palette, ok := elementPalette[element]
	if !ok {
		palette = elementPalette[game.ElementGrass]
	}
	primary, shade, accent := palette[0], palette[1], palette[2]

	growth := clampFloat(float64(level-1)/float64(fullGrowthLevel-1), 0, 1)
	size := lerp(0.55, 0.92, growth) * math.Min(float64(w), float64(h))
	cx := float64(w) * 0.5
	groundY := float64(h) * 0.95

	bodyRX := size * 0.42
	bodyRY := size * 0.30
	bodyCY := groundY - bodyRY
	headR := size * 0.22
	headCY := bodyCY - bodyRY*0.9 - headR*0.4

	// Shadow.
	dc.SetRGBA(0, 0, 0, 0.25)
	dc.DrawEllipse(cx, groundY, bodyRX*0.9, 1.6)
	dc.Fill()

	bodyGrad := gg.NewLinearGradient(cx, bodyCY-bodyRY, cx, bodyCY+bodyRY)
	bodyGrad.AddColorStop(0.0, primary)
	bodyGrad.AddColorStop(1.0, shade)
	dc.SetFillStyle(bodyGrad)
	dc.DrawEllipse(cx, bodyCY, bodyRX, bodyRY)
	dc.Fill()

	// Ears.
	dc.SetColor(shade)
	earW := headR * 0.55
	for _, side := range []float64{-1, 1} {
		baseX := cx + side*headR*0.55
		dc.MoveTo(baseX-earW*0.5, headCY-headR*0.5)
		dc.LineTo(baseX+side*earW*0.3, headCY-headR*1.45)
		dc.LineTo(baseX+earW*0.5, headCY-headR*0.5)
		dc.ClosePath()
		dc.Fill()
	}

	headGrad := gg.NewRadialGradient(cx-headR*0.25, headCY-headR*0.35, headR*0.2, cx, headCY, headR*1.2)
	headGrad.AddColorStop(0.0, accent)
	headGrad.AddColorStop(1.0, primary)
	dc.SetFillStyle(headGrad)
	dc.DrawCircle(cx, headCY, headR)
	dc.Fill()

	// Eyes.
	dc.SetRGBA(0.05, 0.05, 0.05, 1)
	eyeR := math.Max(0.8, headR*0.14)
	dc.DrawCircle(cx-headR*0.38, headCY-headR*0.05, eyeR)
	dc.DrawCircle(cx+headR*0.38, headCY-headR*0.05, eyeR)
	dc.Fill()

	// Feet.
	dc.SetColor(shade)
	footY := groundY - 1
	dc.DrawEllipse(cx-bodyRX*0.55, footY, bodyRX*0.22, 1.4)
	dc.DrawEllipse(cx+bodyRX*0.55, footY, bodyRX*0.22, 1.4)
	dc.Fill()

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func petASCIIArt(element game.Element) string {
	return fmt.Sprintf(" /\\_/\\\n( o.o )\n > ^ <  %s\n", element)
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Min(maxV, math.Max(minV, v))
}

func clampInt(v, minV, maxV int) int {
	return max(minV, min(maxV, v))
}
