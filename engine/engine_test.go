package engine

import (
	"testing"

	"gamegraph/game"
	"gamegraph/game/gametest"
	"gamegraph/metrics"

	"github.com/stretchr/testify/require"
)

func exploreSquare(t *testing.T, options ...Option) (*Engine, *gametest.Square) {
	t.Helper()
	rules := gametest.NewSquare()
	e := New(rules, options...)
	require.NoError(t, e.Explore(rules.Start()))
	return e, rules
}

func TestCanonicalize(t *testing.T) {
	t.Run("first state of a class becomes its representative", func(t *testing.T) {
		e := New(gametest.NewSquare())
		first := game.NewState(game.PlayerTwo, 4).With(2, game.MarkOne)
		second := game.NewState(game.PlayerTwo, 4).With(0, game.MarkOne)

		got1, err := e.Canonicalize(first)
		require.NoError(t, err)
		got2, err := e.Canonicalize(second)
		require.NoError(t, err)

		require.Equal(t, first, got1)
		require.Equal(t, first, got2, "Rotated state should map to the registered representative")
		require.Equal(t, 1, e.Len())
	})

	t.Run("canonicalization is idempotent", func(t *testing.T) {
		e := New(gametest.NewSquare())
		raw := game.NewState(game.PlayerOne, 4).With(1, game.MarkOne).With(3, game.MarkTwo)

		once, err := e.Canonicalize(raw)
		require.NoError(t, err)
		twice, err := e.Canonicalize(once)
		require.NoError(t, err)

		require.Equal(t, once, twice)
	})

	t.Run("player to move separates classes", func(t *testing.T) {
		e := New(gametest.NewSquare())
		a, err := e.Canonicalize(game.NewState(game.PlayerOne, 4))
		require.NoError(t, err)
		b, err := e.Canonicalize(game.NewState(game.PlayerTwo, 4))
		require.NoError(t, err)

		require.NotEqual(t, a, b)
		require.Equal(t, 2, e.Len())
	})

	t.Run("malformed states are rejected", func(t *testing.T) {
		e := New(gametest.NewSquare())

		_, err := e.Canonicalize(game.NewState(game.PlayerOne, 5))
		require.ErrorIs(t, err, ErrMalformedState)

		_, err = e.Canonicalize(game.State{Player: game.PlayerOne, Cells: "\x00\x00\x09\x00"})
		require.ErrorIs(t, err, ErrMalformedState)
		require.Zero(t, e.Len(), "Nothing should be registered")
	})

	t.Run("find does not register new classes", func(t *testing.T) {
		e := New(gametest.NewSquare())

		_, _, err := e.Find(game.NewState(game.PlayerOne, 4))

		require.ErrorIs(t, err, ErrUnknownState)
		require.Zero(t, e.Len())
	})

	t.Run("states of one class share a fingerprint", func(t *testing.T) {
		e, _ := exploreSquare(t)
		raw := game.NewState(game.PlayerOne, 4).With(3, game.MarkOne).With(2, game.MarkTwo)

		canonical, err := e.Canonicalize(raw)
		require.NoError(t, err)

		require.Equal(t, e.Fingerprint(raw), e.Fingerprint(canonical))
	})
}

func TestExplore(t *testing.T) {
	t.Run("every reachable class is expanded once with complete successors", func(t *testing.T) {
		collector := metrics.NewCollector("square")
		e, rules := exploreSquare(t, WithCollector(collector))

		require.Equal(t, 7, e.Len())
		for _, state := range e.States() {
			d, ok := e.Details(state)
			require.True(t, ok)
			require.True(t, d.Expanded, "State %s should be expanded", state)
			require.NotEqual(t, Unknown, d.Status)
			if d.Terminal() {
				require.Empty(t, d.Successors, "Terminal state %s should have no successors", state)
				continue
			}
			require.Len(t, d.Successors, len(rules.Moves(state)))
			for move, successor := range d.Successors {
				want, err := e.Canonicalize(rules.Apply(state, move))
				require.NoError(t, err)
				require.Equal(t, want, successor)
			}
		}
		summary := collector.Complete()
		require.Equal(t, int64(7), summary.Canonical)
		require.Equal(t, int64(7), summary.Expanded)
		require.Equal(t, int64(2), summary.Terminal)
	})

	t.Run("terminal states are valued on discovery", func(t *testing.T) {
		e, _ := exploreSquare(t)
		won := game.State{Player: game.PlayerTwo, Cells: "\x01\x01\x02\x00"}
		drawn := game.State{Player: game.PlayerOne, Cells: "\x01\x02\x01\x02"}

		_, d, err := e.Find(won)
		require.NoError(t, err)
		require.True(t, d.Terminal())
		require.True(t, d.Solved)
		require.Equal(t, game.Value(-1000), d.Value)
		require.Equal(t, game.PlayerOne, *d.Winner)

		_, d, err = e.Find(drawn)
		require.NoError(t, err)
		require.True(t, d.Terminal())
		require.Nil(t, d.Winner)
		require.Equal(t, game.Value(0), d.Value)
	})

	t.Run("non-terminal states are left unsolved", func(t *testing.T) {
		e, rules := exploreSquare(t)

		d, ok := e.Details(rules.Start())

		require.True(t, ok)
		require.False(t, d.Solved)
		require.Equal(t, game.NoMove, d.Optimal)
	})

	t.Run("explored graph does not depend on frontier order", func(t *testing.T) {
		base, _ := exploreSquare(t)
		for seed := uint64(1); seed <= 5; seed++ {
			shuffled, _ := exploreSquare(t, WithShuffle(seed))

			require.Equal(t, base.Len(), shuffled.Len())
			terminal := 0
			for _, state := range shuffled.States() {
				d, _ := shuffled.Details(state)
				if d.Terminal() {
					terminal++
				}
			}
			require.Equal(t, 2, terminal)
		}
	})

	t.Run("exploring again does not re-expand", func(t *testing.T) {
		collector := metrics.NewCollector("square")
		e, rules := exploreSquare(t, WithCollector(collector))

		require.NoError(t, e.Explore(rules.Start(), rules.Start()))

		require.Equal(t, int64(7), collector.Complete().Expanded)
	})

	t.Run("duplicate seeds are expanded once", func(t *testing.T) {
		rules := gametest.NewSquare()
		collector := metrics.NewCollector("square")
		e := New(rules, WithCollector(collector))
		rotated := game.NewState(game.PlayerTwo, 4).With(1, game.MarkOne)
		opening := game.NewState(game.PlayerTwo, 4).With(0, game.MarkOne)

		require.NoError(t, e.Explore(opening, rotated))

		require.Equal(t, 6, e.Len(), "Everything but the empty board")
		require.Equal(t, int64(6), collector.Complete().Expanded)
	})

	t.Run("malformed seeds fail", func(t *testing.T) {
		e := New(gametest.NewSquare())

		err := e.Explore(game.NewState(game.PlayerOne, 3))

		require.ErrorIs(t, err, ErrMalformedState)
	})
}

func TestDetailsSetValue(t *testing.T) {
	d := newDetails()
	d.SetValue(5, 2)

	require.True(t, d.Solved)
	require.Equal(t, game.Value(5), d.Value)
	require.Equal(t, 2, d.Optimal)
	require.Panics(t, func() { d.SetValue(6, 1) }, "Value should never change once set")
}
