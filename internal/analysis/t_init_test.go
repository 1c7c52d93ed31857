package analysis

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// restraintsOf returns a RestraintFunc reading from a fixed table
func restraintsOf(table ...[]bool) RestraintFunc {
	return func(node int) []bool { return table[node] }
}

var (
	fixed = []bool{true, true, true}
	free  = []bool{false, false, false}
)

// slices converts a matrix to [][]float64 for chk.Deep2
func slices(a mat.Matrix) [][]float64 {
	r, c := a.Dims()
	res := make([][]float64, r)
	for i := range res {
		res[i] = make([]float64, c)
		for j := range res[i] {
			res[i][j] = a.At(i, j)
		}
	}
	return res
}

// checkSymmetric fails tst if a is not symmetric within tol
func checkSymmetric(tst interface{ Errorf(string, ...any) }, msg string, tol float64, a mat.Matrix) {
	r, c := a.Dims()
	if r != c {
		tst.Errorf("%s: matrix is %dx%d", msg, r, c)
		return
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			d := a.At(i, j) - a.At(j, i)
			if d > tol || d < -tol {
				tst.Errorf("%s: a[%d][%d]=%g != a[%d][%d]=%g", msg, i, j, a.At(i, j), j, i, a.At(j, i))
			}
		}
	}
}
