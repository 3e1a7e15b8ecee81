package artifact

import (
	"bytes"
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"gamegraph/engine"
	"gamegraph/meta"
	"gamegraph/utils"
)

// CatchAll is the pattern of the last reply, matching any remaining input.
const CatchAll = "."

// Reply pairs a pattern with the action taken when player input matches it.
type Reply struct {
	Pattern string
	Action  string
	re      *regexp.Regexp
}

func newReply(pattern, action string) Reply {
	return Reply{Pattern: pattern, Action: action, re: regexp.MustCompile(pattern)}
}

// Replies is an ordered reply table; the first matching reply wins. It is
// written as a JSON object whose keys keep the table order.
type Replies []Reply

// BuildReplies emits one reply per (state, input label) pair of the graph,
// then the catch-all. States are ordered by descending code length, then by
// code, so a code is tried before any shorter code it contains; labels of one
// state are in ascending order.
func BuildReplies(graph *engine.Graph) Replies {
	codes := slices.Clone(graph.Codes)
	slices.SortFunc(codes, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	replies := make(Replies, 0, graph.Pairs()+1)
	for _, code := range codes {
		options := graph.Edges[code]
		for _, label := range utils.SortedKeys(options) {
			replies = append(replies, newReply(pattern(code, label), action(options[label])))
		}
	}
	return append(replies, newReply(CatchAll, "#error#"))
}

// pattern requires code and label as whole words, in either order.
func pattern(code, label string) string {
	c, l := regexp.QuoteMeta(code), regexp.QuoteMeta(label)
	return fmt.Sprintf(`\b%s\b.*\b%s\b|\b%s\b.*\b%s\b`, c, l, l, c)
}

// action pushes each category's result states, then hands over to the
// generator's result rule.
func action(categories []engine.Category) string {
	var sb strings.Builder
	sb.WriteString("{unlisted}")
	for _, category := range categories {
		refs := make([]string, len(category.Codes))
		for i, code := range category.Codes {
			refs[i] = reference(code)
		}
		fmt.Fprintf(&sb, "[%s:%s]", category.Name, strings.Join(refs, ","))
	}
	sb.WriteString(meta.ReplyMarker)
	return sb.String()
}

// Match returns the first reply whose pattern matches input.
func (r Replies) Match(input string) (Reply, bool) {
	for _, reply := range r {
		re := reply.re
		if re == nil {
			re = regexp.MustCompile(reply.Pattern)
		}
		if re.MatchString(input) {
			return reply, true
		}
	}
	return Reply{}, false
}

func (r Replies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, reply := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(reply.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := marshal(reply.Action)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
