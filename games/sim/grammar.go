package sim

import (
	"fmt"
	"math"
	"strings"
)

const radius = 1000

// position places vertex v on a hexagon, vertex 0 at the bottom left.
func position(v int) (x, y float64) {
	angle := float64(v+4) * math.Pi / 3
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

func line(e Edge, stroke string, width int) string {
	x1, y1 := position(e[0])
	x2, y2 := position(e[1])
	return fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d" />`,
		x1, y1, x2, y2, stroke, width)
}

func svg() string {
	var sb strings.Builder
	sb.WriteString(`{svg <svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="1600" height="900" id="Complete graph K6">`)
	sb.WriteString(`<rect width="100%" height="100%" fill="none"/>`)
	sb.WriteString(`<circle cx = "800" cy="450" r="450" stroke="none" fill="white"/>`)
	sb.WriteString(`<g transform="translate(800 450) scale(0.37 0.37)">`)
	for e := range Edges {
		fmt.Fprintf(&sb, "#%d#", e)
	}
	sb.WriteString(`<g style="fill:green;stroke:black;stroke-width:5">`)
	for v := range Vertices {
		x, y := position(v)
		fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="35"/>`, x, y)
	}
	sb.WriteString(`</g>`)
	sb.WriteString(`<g transform="scale(1.128 1.128)" font-family="Verdana" font-size="126" text-anchor="middle"><text>`)
	for v := range Vertices {
		x, y := position(v)
		fmt.Fprintf(&sb, `<tspan x="%.2f" y="%.2f" alignment-baseline="central">%d</tspan>`, x, y, v+1)
	}
	sb.WriteString(`</text></g></g></svg>}`)
	return sb.String()
}

// Grammar draws K6 with every edge rule "<e>" initially set to an uncoloured
// line; a state's display overrides the coloured ones.
func (g *Game) Grammar() map[string][]string {
	grammar := make(map[string][]string)

	var init strings.Builder
	for id, e := range edges {
		grammar[fmt.Sprintf("r%d", id)] = []string{line(e, "red", 20)}
		grammar[fmt.Sprintf("b%d", id)] = []string{line(e, "blue", 20)}
		grammar[fmt.Sprintf("e%d", id)] = []string{line(e, "black", 15)}
		fmt.Fprintf(&init, "[%d:#e%d#]", id, id)
	}
	grammar["init"] = []string{init.String()}

	grammar["svg"] = []string{svg()}
	grammar["alt"] = []string{""}
	grammar["display"] = []string{"#svg##alt#Code: #code#\nOptions: #options#"}
	grammar["display_end"] = []string{"#svg##alt#"}
	grammar["red_win"] = []string{
		"Blue made a triangle. Red wins!",
		"Red wins!",
	}
	grammar["blue_win"] = []string{
		"Red made a triangle. Blue wins!",
		"Blue wins!",
	}
	grammar["result"] = []string{"#only#"}
	return grammar
}
