package artifact

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gamegraph/engine"
	"gamegraph/meta"

	"github.com/stretchr/testify/require"
)

func newGraph() *engine.Graph {
	return &engine.Graph{
		Codes: []string{"a1", "a10", "b"},
		Edges: map[string]map[string][]engine.Category{
			"a1": {
				"up":   {{Name: "only", Codes: []string{"a10"}}},
				"down": {{Name: "only", Codes: []string{"b"}}},
			},
			"a10": {
				"up": {
					{Name: "first", Codes: []string{"a1"}},
					{Name: "second", Codes: []string{"a1", "b"}},
				},
			},
			"b": {},
		},
		Displays: map[string]string{
			"a1":  "<svg>one</svg>",
			"a10": "ten & more",
			"b":   "#done#",
		},
		Origins: []engine.Origin{
			{Message: "hello\n", Code: "a1"},
			{Message: "again ", Code: "b"},
		},
	}
}

// keys decodes a JSON object and returns its keys in document order.
func keys(t *testing.T, data []byte) []string {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(string(data)))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var out []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		out = append(out, tok.(string))
		var value json.RawMessage
		require.NoError(t, dec.Decode(&value))
	}
	return out
}

func TestBuildGrammar(t *testing.T) {
	t.Run("one rule per state with sorted labels", func(t *testing.T) {
		grammar := BuildGrammar(nil, newGraph())

		require.Equal(t, Rule{"[code:a1][options:down‚up]<svg>one</svg>"}, grammar["*a1"])
		require.Equal(t, Rule{"[code:a10][options:up]ten & more"}, grammar["*a10"])
		require.Equal(t, Rule{"[code:b][options:]#done#"}, grammar["*b"], "Terminal states have no options")
		require.Equal(t, Rule{meta.ErrorMessage}, grammar["error"])
		require.Len(t, grammar, 5)
	})

	t.Run("origin references every start state in order", func(t *testing.T) {
		grammar := BuildGrammar(nil, newGraph())

		require.Equal(t, Rule{"hello\n#*a1#", "again #*b#"}, grammar["origin"])
	})

	t.Run("generated rules override the game's rules", func(t *testing.T) {
		base := map[string][]string{
			"origin": {"ignored"},
			"extra":  {"y", "z"},
		}

		grammar := BuildGrammar(base, newGraph())

		require.Equal(t, Rule{"y", "z"}, grammar["extra"])
		require.Len(t, grammar["origin"], 2)
	})
}

func TestRule(t *testing.T) {
	one, err := marshal(Rule{"<b>"})
	require.NoError(t, err)
	require.Equal(t, `"<b>"`, string(one), "Single alternatives are plain strings with HTML kept")

	many, err := json.Marshal(Rule{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, `["a","b"]`, string(many))

	var decoded Grammar
	require.NoError(t, json.Unmarshal([]byte(`{"x":"a","y":["b","c"]}`), &decoded))
	require.Equal(t, Grammar{"x": {"a"}, "y": {"b", "c"}}, decoded)
}

func TestBuildReplies(t *testing.T) {
	t.Run("one reply per state and label plus the catch-all", func(t *testing.T) {
		graph := newGraph()

		replies := BuildReplies(graph)

		require.Len(t, replies, graph.Pairs()+1)
		require.Equal(t, CatchAll, replies[len(replies)-1].Pattern, "Catch-all should be last")
		require.Equal(t, "#error#", replies[len(replies)-1].Action)
	})

	t.Run("longer codes come first", func(t *testing.T) {
		replies := BuildReplies(newGraph())

		var order []string
		for _, reply := range replies[:len(replies)-1] {
			order = append(order, reply.Pattern)
		}
		require.Equal(t, []string{
			`\ba10\b.*\bup\b|\bup\b.*\ba10\b`,
			`\ba1\b.*\bdown\b|\bdown\b.*\ba1\b`,
			`\ba1\b.*\bup\b|\bup\b.*\ba1\b`,
		}, order)
	})

	t.Run("actions push each category then the marker", func(t *testing.T) {
		replies := BuildReplies(newGraph())

		require.Equal(t, "{unlisted}[first:#*a1#][second:#*a1#,#*b#]#result#", replies[0].Action)
		require.Equal(t, "{unlisted}[only:#*b#]#result#", replies[1].Action)
	})

	t.Run("labels are quoted", func(t *testing.T) {
		require.Equal(t, `\bx\b.*\b1\.5\b|\b1\.5\b.*\bx\b`, pattern("x", "1.5"))
	})
}

func TestMatch(t *testing.T) {
	replies := BuildReplies(newGraph())

	tests := []struct {
		input   string
		pattern string
	}{
		{"a10 up", replies[0].Pattern},
		{"up a10", replies[0].Pattern},
		{"a1 up", replies[2].Pattern},
		{"please go down from a1 now", replies[1].Pattern},
		{"a10 down", CatchAll},
		{"a1up", CatchAll},
		{"b up", CatchAll},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply, ok := replies.Match(tt.input)

			require.True(t, ok)
			require.Equal(t, tt.pattern, reply.Pattern)
		})
	}

	t.Run("empty input matches nothing", func(t *testing.T) {
		_, ok := replies.Match("")
		require.False(t, ok)
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	graph := newGraph()
	grammar := BuildGrammar(map[string][]string{"svg": {"<svg/>"}}, graph)
	replies := BuildReplies(graph)

	require.NoError(t, Write(dir, "toy", grammar, replies))

	grammarPath, repliesPath := Paths(dir, "toy")
	data, err := os.ReadFile(grammarPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "\t\"svg\": \"<svg/>\"", "HTML should not be escaped and indentation should be tabs")
	var decoded Grammar
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, grammar, decoded)

	data, err = os.ReadFile(repliesPath)
	require.NoError(t, err)
	var patterns []string
	for _, reply := range replies {
		patterns = append(patterns, reply.Pattern)
	}
	require.Equal(t, patterns, keys(t, data), "Replies should keep table order")
}

func TestWriteFailure(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "blocker")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	err = Write(file.Name(), "toy", Grammar{}, Replies{})

	require.Error(t, err, "A file in place of the directory should fail")
}
