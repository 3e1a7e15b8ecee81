package xo

import (
	"fmt"
	"slices"
	"strings"
)

const (
	cross = `[%[1]d:<path d="M %[2]d20 %[3]d20 l 60 60" stroke="black" stroke-width="13" stroke-linecap="round" />` +
		`<path d="M %[2]d80 %[3]d20 l -60 60" stroke="black" stroke-width="13" stroke-linecap="round" />][%[1]da:cross]`
	nought = `[%[1]d:<circle cx="%[2]d50" cy="%[3]d50" r="30" stroke="black" stroke-width="13" fill="none" />][%[1]da:nought]`

	svg = `{svg <svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" width="533" height="300">` +
		`<g width="300" height="300" transform="translate(116.67 0)"><rect width="300" height="300" rx="17" ry="17" fill="white"/>` +
		`<path d="M 100 15 l 0 270" stroke="black" stroke-width="13" stroke-linecap="round" />` +
		`<path d="M 200 15 l 0 270" stroke="black" stroke-width="13" stroke-linecap="round" />` +
		`<path d="M 15 100 l 270 0" stroke="black" stroke-width="13" stroke-linecap="round" />` +
		`<path d="M 15 200 l 270 0" stroke="black" stroke-width="13" stroke-linecap="round" />` +
		`#1##2##3##4##5##6##7##8##9#</g></svg>}`
	alt = `{alt row 1 #1a# #2a# #3a# row 2 #4a# #5a# #6a# row 3 #7a# #8a# #9a#}`

	// optimalOdds is how many optimal replies are picked for each suboptimal one.
	optimalOdds = 29
)

// Grammar draws the board as SVG with alt text and announces the result.
// Square rules "<i>" and "<i>a" are set to a mark when the state's display
// pushes "x<i>" or "o<i>".
func (g *Game) Grammar() map[string][]string {
	grammar := make(map[string][]string)

	var init strings.Builder
	for r := range 3 {
		for c := range 3 {
			i := 3*r + c + 1
			grammar[fmt.Sprintf("x%d", i)] = []string{fmt.Sprintf(cross, i, c, r)}
			grammar[fmt.Sprintf("o%d", i)] = []string{fmt.Sprintf(nought, i, c, r)}
		}
	}
	for i := 1; i <= Size; i++ {
		fmt.Fprintf(&init, "[%d:]", i)
	}
	for i := 1; i <= Size; i++ {
		fmt.Fprintf(&init, "[%da:blank]", i)
	}
	grammar["init"] = []string{init.String()}

	grammar["display"] = []string{"#svg##alt#Code: #code#\nOptions: #options#"}
	grammar["display_end"] = []string{"#svg##alt#"}
	grammar["svg"] = []string{svg}
	grammar["alt"] = []string{alt}

	grammar["draw"] = []string{
		"It's a draw#punctuation#",
		"We both lose#punctuation#",
		"We both win#punctuation#",
	}
	grammar["ai_win"] = []string{
		"#AI# win#punctuation#",
		"A winner is me#punctuation#",
		"I've won#punctuation#",
		"You lose#punctuation#",
		"You've lost#punctuation#",
	}
	grammar["player_win"] = []string{
		"You win#punctuation#",
		"You've won#punctuation#",
		"#AI# lose#punctuation#",
		"#AI# lost#punctuation#",
	}
	grammar["AI"] = []string{"I", "AI", "CPU", "Tracery", "Bot", "Computer", "Robot"}
	grammar["punctuation"] = []string{"?", ".", ".", ".", "!", "!", "!", "!"}
	grammar["result"] = append(slices.Repeat([]string{"#optimal#"}, optimalOdds), "#suboptimal#")
	return grammar
}
