package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatePlay(t *testing.T) {
	t.Run("placing a mark passes the turn and leaves the original untouched", func(t *testing.T) {
		s := NewState(PlayerOne, 9)

		next := s.Play(4)

		require.Equal(t, MarkOne, next.At(4))
		require.Equal(t, PlayerTwo, next.Player)
		require.Equal(t, Empty, s.At(4), "State should be immutable")
		require.Equal(t, PlayerOne, s.Player)
	})

	t.Run("states compare structurally", func(t *testing.T) {
		a := NewState(PlayerOne, 9).Play(0).Play(8)
		b := NewState(PlayerOne, 9).Play(0).Play(8)

		require.Equal(t, a, b)
		require.True(t, a == b)
	})

	t.Run("empty positions are listed in ascending order", func(t *testing.T) {
		s := FromMarks(PlayerOne, []Mark{MarkOne, Empty, MarkTwo, Empty})

		require.Equal(t, []int{1, 3}, s.Empty())
		require.Equal(t, 1, s.Count(MarkOne))
		require.Equal(t, 2, s.Count(Empty))
	})
}

func TestStateValidate(t *testing.T) {
	require.NoError(t, NewState(PlayerTwo, 15).Validate(15))
	require.Error(t, NewState(PlayerTwo, 14).Validate(15), "Wrong size should be rejected")
	require.Error(t, State{Player: Player(7), Cells: "\x00"}.Validate(1), "Unknown player should be rejected")
	require.Error(t, State{Player: PlayerOne, Cells: "\x05"}.Validate(1), "Unknown mark should be rejected")
}

func TestPlayer(t *testing.T) {
	require.Equal(t, PlayerTwo, PlayerOne.Other())
	require.Equal(t, PlayerOne, PlayerTwo.Other())
	require.Equal(t, MarkOne, PlayerOne.Mark())
	require.Equal(t, PlayerTwo, MarkTwo.Owner())
	require.Equal(t, Value(-1000), PlayerOne.WinValue(1000))
	require.Equal(t, Value(1000), PlayerTwo.WinValue(1000))
	require.True(t, PlayerTwo.Better(3, 2))
	require.True(t, PlayerOne.Better(2, 3))
	require.False(t, PlayerOne.Better(2, 2), "Ties are not an improvement")
	require.Panics(t, func() { Empty.Owner() })
}

func TestValueDecay(t *testing.T) {
	tests := []struct {
		in   Value
		want Value
	}{
		{1000, 999},
		{-1000, -999},
		{2, 1},
		{-2, -1},
		{0, 0},
	}
	for _, tt := range tests {
		got, err := tt.in.Decay()
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := Value(1).Decay()
	require.ErrorIs(t, err, ErrDecayExhausted)
	_, err = Value(-1).Decay()
	require.ErrorIs(t, err, ErrDecayExhausted)
}
