// Package solver computes the optimal-stopping expected value of the
// red-and-black drawing game by dynamic programming. For fixed totals (B, R)
// it fills a dense (B+1)×(R+1) table holding, for every state (b, r), the
// expected value of playing optimally from that state onward.
//
// Package solver は、赤と黒のカードを引くゲームの最適停止期待値を
// 動的計画法で計算します。総枚数 (B, R) を固定し、全ての状態 (b, r) について
// そこから最適に行動した場合の期待値を (B+1)×(R+1) の密なテーブルに埋めます。
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sw965/omw"
	"github.com/sw965/redblack"
	"github.com/sw965/redblack/blas64/tensor/2d"
	"gonum.org/v1/gonum/blas/blas64"
)

var (
	ErrInvalidParameters = errors.New("パラメータエラー: カード枚数は0以上である必要があります")
	ErrOutOfRange        = errors.New("範囲外エラー: 指定した状態はテーブルの範囲外です")
)

// Table holds the expected value of every state reachable from the full deck.
// It is filled once by New and read-only afterwards, so it may be shared by
// concurrent readers.
//
// Tableは、満杯の山札から到達可能な全ての状態の期待値を保持します。
// Newで一度だけ埋められ、以降は読み取り専用なので、複数のゴルーチンから
// 同時に読んでも安全です。
type Table struct {
	BlackTotal int
	RedTotal   int
	values     blas64.General
}

// New builds the expected-value table for a deck of blackTotal black cards
// and redTotal red cards. States are processed with b and r ascending, so
// both dependencies (b-1, r) and (b, r-1) are already computed.
//
// Newは、黒blackTotal枚・赤redTotal枚の山札に対する期待値テーブルを構築します。
// 状態はbとrの昇順に処理される為、依存先の (b-1, r) と (b, r-1) は
// 常に計算済みです。
func New(blackTotal, redTotal int) (*Table, error) {
	if _, err := redblack.NewState(blackTotal, redTotal); err != nil {
		return nil, fmt.Errorf("%w: black=%d, red=%d", ErrInvalidParameters, blackTotal, redTotal)
	}

	values := tensor2d.NewZeros(blackTotal+1, redTotal+1)
	for b := 0; b <= blackTotal; b++ {
		for r := 0; r <= redTotal; r++ {
			if b == 0 {
				// 黒が残っていなければ、これ以上の利得は無い
				continue
			}

			if r == 0 {
				// 赤が残っていなければ、残りの黒を全て引き切るのが最適
				values.Data[tensor2d.At(values, b, 0)] = float64(b)
				continue
			}

			s := redblack.State{Black: b, Red: r}
			drawEV := s.DrawProb(redblack.Black)*(redblack.Black.Payout()+values.Data[tensor2d.At(values, b-1, r)]) +
				s.DrawProb(redblack.Red)*(redblack.Red.Payout()+values.Data[tensor2d.At(values, b, r-1)])

			// Stopはいつでも選べるので、合成後の継続期待値に対して一度だけ0でクランプする。
			// 分岐毎にクランプするのは別のゲームの値になってしまう。
			values.Data[tensor2d.At(values, b, r)] = omw.Max(0.0, drawEV)
		}
	}

	return &Table{BlackTotal: blackTotal, RedTotal: redTotal, values: values}, nil
}

func (t *Table) at(b, r int) float64 {
	return t.values.Data[tensor2d.At(t.values, b, r)]
}

// Lookup returns the expected value at state (black, red).
// Both coordinates must be positive and within the construction totals;
// the zero-card edges are defined internally but not queryable.
//
// Lookupは、状態 (black, red) の期待値を返します。
// 両方の座標は正かつ構築時の総枚数以内である必要があります。
// 枚数0の端はテーブル内部では定義されていますが、照会は出来ません。
func (t *Table) Lookup(black, red int) (float64, error) {
	if black <= 0 || black > t.BlackTotal {
		return 0.0, fmt.Errorf("%w: black=%d (有効範囲: 1〜%d)", ErrOutOfRange, black, t.BlackTotal)
	}
	if red <= 0 || red > t.RedTotal {
		return 0.0, fmt.Errorf("%w: red=%d (有効範囲: 1〜%d)", ErrOutOfRange, red, t.RedTotal)
	}
	return t.at(black, red), nil
}

// BestMove returns the optimal move at state (black, red): Draw if the
// state's value is strictly positive, otherwise Stop.
//
// BestMoveは、状態 (black, red) での最適な手を返します。
// 状態の値が正ならDraw、そうでなければStopです。
func (t *Table) BestMove(black, red int) (redblack.Move, error) {
	v, err := t.Lookup(black, red)
	if err != nil {
		return redblack.Stop, err
	}

	if v > 0.0 {
		return redblack.Draw, nil
	}
	return redblack.Stop, nil
}

// Values returns a clone of the full grid, rows indexed by b in [0, BlackTotal]
// and columns by r in [0, RedTotal], zero-card edges included.
//
// Valuesは、テーブル全体のクローンを返します。行はbが0〜BlackTotal、
// 列はrが0〜RedTotalに対応し、枚数0の端も含みます。
func (t *Table) Values() blas64.General {
	return tensor2d.Clone(t.values)
}

// Render formats the whole table as a grid: rows b descending from BlackTotal
// to 0, columns r ascending from 0 to RedTotal, one decimal place per cell.
//
// Renderは、テーブル全体をグリッドとして整形します。行はbがBlackTotalから0への
// 降順、列はrが0からRedTotalへの昇順で、各セルは小数第1位まで表示されます。
func (t *Table) Render() string {
	width := 0
	cells := make([][]string, t.BlackTotal+1)
	for i := range cells {
		b := t.BlackTotal - i
		row := make([]string, t.RedTotal+1)
		for r := 0; r <= t.RedTotal; r++ {
			cell := fmt.Sprintf("%.1f", t.at(b, r))
			width = omw.Max(width, len(cell))
			row[r] = cell
		}
		cells[i] = row
	}

	var sb strings.Builder
	for _, row := range cells {
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
