// Package artifact turns a traced game graph into the two documents read by
// the text generator: a grammar of rules and an ordered reply table.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gamegraph/engine"
	"gamegraph/meta"
	"gamegraph/utils"
)

// Rule is a rule body. A single alternative is written as a plain string, more
// than one as a list the generator picks from at random.
type Rule []string

func (r Rule) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return marshal(r[0])
	}
	return marshal([]string(r))
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*r = Rule{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("rule is neither a string nor a list of strings: %w", err)
	}
	*r = many
	return nil
}

// Grammar maps rule names to rule bodies.
type Grammar map[string]Rule

// BuildGrammar merges the game's own rules with one rule per traced state,
// the origin rule and the error rule. Generated rules win a name clash.
func BuildGrammar(base map[string][]string, graph *engine.Graph) Grammar {
	grammar := make(Grammar, len(base)+len(graph.Codes)+2)
	for name, body := range base {
		grammar[name] = Rule(body)
	}

	for _, code := range graph.Codes {
		labels := utils.SortedKeys(graph.Edges[code])
		grammar[StateRule(code)] = Rule{fmt.Sprintf("[code:%s][options:%s]%s",
			code, strings.Join(labels, meta.OptionSeparator), graph.Displays[code])}
	}

	origin := make(Rule, len(graph.Origins))
	for i, o := range graph.Origins {
		origin[i] = o.Message + reference(o.Code)
	}
	grammar["origin"] = origin
	grammar["error"] = Rule{meta.ErrorMessage}
	return grammar
}

// StateRule is the name of the rule rendering the state with the given code.
func StateRule(code string) string {
	return meta.RulePrefix + code
}

func reference(code string) string {
	return "#" + StateRule(code) + "#"
}

// marshal encodes v without escaping HTML, since rule bodies carry SVG markup.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
