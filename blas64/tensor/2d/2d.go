package tensor2d

import (
	"gonum.org/v1/gonum/blas/blas64"
	"slices"
)

func NewZeros(rows, cols int) blas64.General {
	return blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, rows*cols),
	}
}

func NewZerosLike(gen blas64.General) blas64.General {
	return NewZeros(gen.Rows, gen.Cols)
}

func N(gen blas64.General) int {
	return gen.Rows * gen.Cols
}

func Clone(gen blas64.General) blas64.General {
	return blas64.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas64.General, row, col int) int {
	return row*gen.Stride + col
}
