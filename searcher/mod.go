// Package searcher solves explored games by backward induction.
//
// Values are signed: PlayerTwo maximizes, PlayerOne minimizes. A propagated
// value is shifted one unit toward zero per ply, so among winning moves the
// fastest is preferred and among losing moves the slowest.
package searcher

import "errors"

var (
	ErrUnexplored = errors.New("state reached before exploration completed")
	ErrCycle      = errors.New("state graph has a cycle")
	ErrNoMoves    = errors.New("in-progress state has no successors")
	ErrUnsolved   = errors.New("state has no solved value")
)
