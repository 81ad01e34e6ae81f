package gridworld

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// CellSize is the width and height in pixels of a single cell when
// rendering a GridWorld
const CellSize float64 = 64

// Render draws the GridWorld with one arrow per non-goal cell pointing
// in the direction chosen by policy. The policy must have one action
// per state. Goal cells are filled and the agent's current cell is
// outlined.
func (g *GridWorld) Render(policy []int) (image.Image, error) {
	if len(policy) != g.NumStates() {
		return nil, fmt.Errorf("render: policy has %d states, gridworld "+
			"has %d", len(policy), g.NumStates())
	}

	width, height := float64(g.c)*CellSize, float64(g.r)*CellSize
	dc := gg.NewContext(int(width), int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for state := 0; state < g.NumStates(); state++ {
		x, y := indToC(state, g.c)

		// Row y = 0 is drawn at the bottom of the image so that the Up
		// action points up
		left := float64(x) * CellSize
		top := height - float64(y+1)*CellSize

		if g.AtGoal(state) {
			dc.SetRGB(0.2, 0.7, 0.3)
			dc.DrawRectangle(left, top, CellSize, CellSize)
			dc.Fill()
		} else {
			drawArrow(dc, left+CellSize/2, top+CellSize/2, policy[state])
		}

		dc.SetRGB(0.6, 0.6, 0.6)
		dc.SetLineWidth(1)
		dc.DrawRectangle(left, top, CellSize, CellSize)
		dc.Stroke()
	}

	// Outline the current position
	x, y := g.Coordinates()
	dc.SetRGB(0.9, 0.2, 0.2)
	dc.SetLineWidth(4)
	dc.DrawRectangle(float64(x)*CellSize+2, height-float64(y+1)*CellSize+2,
		CellSize-4, CellSize-4)
	dc.Stroke()

	return dc.Image(), nil
}

// SavePNG renders the GridWorld with Render and saves the image as a
// PNG file at path
func (g *GridWorld) SavePNG(policy []int, path string) error {
	img, err := g.Render(policy)
	if err != nil {
		return fmt.Errorf("savePNG: %w", err)
	}
	return gg.SavePNG(path, img)
}

// drawArrow draws an arrow centred at (cx, cy) pointing in the
// direction of action
func drawArrow(dc *gg.Context, cx, cy float64, action int) {
	length := CellSize * 0.3
	var dx, dy float64
	switch action {
	case Left:
		dx = -length
	case Right:
		dx = length
	case Up:
		dy = -length
	case Down:
		dy = length
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(3)
	dc.DrawLine(cx-dx, cy-dy, cx+dx, cy+dy)
	dc.Stroke()

	// Arrow head
	dc.DrawCircle(cx+dx, cy+dy, 4)
	dc.Fill()
}
