// meta/meta.go
package meta

// WinMagnitude is the absolute terminal value of a won game. It must exceed
// the longest game in plies, since every ply decays a value by one.
const WinMagnitude = 1000

// ProgressInterval is the number of expansions between progress log lines.
const ProgressInterval = 10000

// CircleSize is the default number of positions of the circle game.
const CircleSize = 15

// ReplyMarker ends every reply action; the text generator expands it.
const ReplyMarker = "#result#"

// RulePrefix names the per-state rules of the grammar.
const RulePrefix = "*"

// ErrorMessage answers input that matches no reply.
const ErrorMessage = `Couldn't understand input. Reply in the format "\[code\] \[input\]".`

// OptionSeparator joins the input labels listed in a state's rule (U+201A).
const OptionSeparator = "‚"
