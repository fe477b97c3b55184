// Package redblack models the red-and-black card-drawing game.
// A deck holds black cards (worth +$1) and red cards (worth -$1); the player
// draws without replacement and may stop at any time.
//
// Package redblack は赤と黒のカードを引くゲームをモデル化します。
// 山札には黒のカード（+1ドル）と赤のカード（-1ドル）があり、プレイヤーは
// 引き戻し無しでカードを引き、いつでも止める事が出来ます。
package redblack

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeCardCount = errors.New("カード枚数エラー: 負の枚数は指定できません")
	ErrNoCardLeft        = errors.New("カード枚数エラー: 引けるカードが残っていません")
)

// Color identifies the color of a card in the deck.
//
// Colorは、山札のカードの色を表します。
type Color int

const (
	Black Color = iota
	Red
)

// Payout returns the money gained by drawing a card of this color.
//
// Payoutは、この色のカードを引いた時に得られる金額を返します。
func (c Color) Payout() float64 {
	if c == Black {
		return 1.0
	}
	return -1.0
}

// Move represents the player's decision at a state.
//
// Moveは、ある状態におけるプレイヤーの選択を表します。
type Move int

const (
	Stop Move = iota
	Draw
)

// State holds the cards remaining in the deck at a decision point.
//
// Stateは、意思決定時点で山札に残っているカードの枚数を保持します。
type State struct {
	Black int
	Red   int
}

// NewState creates a State, rejecting negative card counts.
//
// NewStateは、Stateを作成します。負の枚数は拒否されます。
func NewState(black, red int) (State, error) {
	if black < 0 || red < 0 {
		return State{}, fmt.Errorf("%w: black=%d, red=%d", ErrNegativeCardCount, black, red)
	}
	return State{Black: black, Red: red}, nil
}

func (s State) Total() int {
	return s.Black + s.Red
}

// IsEnd reports whether the deck is empty, forcing the player to stop.
//
// IsEndは、山札が空でプレイヤーが止めるしかない状態かどうかを返します。
func (s State) IsEnd() bool {
	return s.Total() == 0
}

// DrawProb returns the probability that the next draw is the given color.
// The deck must not be empty.
//
// DrawProbは、次に引くカードが指定した色である確率を返します。
// 山札が空であってはなりません。
func (s State) DrawProb(c Color) float64 {
	n := float64(s.Total())
	if c == Black {
		return float64(s.Black) / n
	}
	return float64(s.Red) / n
}

// Draw removes one card of the given color and returns the next state.
//
// Drawは、指定した色のカードを1枚取り除き、次の状態を返します。
func (s State) Draw(c Color) (State, error) {
	next := s
	if c == Black {
		if s.Black == 0 {
			return State{}, fmt.Errorf("%w: black", ErrNoCardLeft)
		}
		next.Black -= 1
	} else {
		if s.Red == 0 {
			return State{}, fmt.Errorf("%w: red", ErrNoCardLeft)
		}
		next.Red -= 1
	}
	return next, nil
}

// LegalMoves returns the moves available to the player.
// Stop is always legal; Draw is legal only while cards remain.
//
// LegalMovesは、プレイヤーが選べる手を返します。
// Stopは常に合法で、Drawはカードが残っている間のみ合法です。
func (s State) LegalMoves() []Move {
	if s.IsEnd() {
		return []Move{Stop}
	}
	return []Move{Stop, Draw}
}
