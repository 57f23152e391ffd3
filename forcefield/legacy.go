package forcefield

import "github.com/skelterjohn/go.matrix"

// OldPvals returns the starting parameter values as a go.matrix column
// vector, for callers still on the old matrix stack. New code should use
// Pvals instead.
func (F *FF) OldPvals() *matrix.DenseMatrix {
	return matrix.MakeDenseMatrix(append([]float64{}, F.pvals...), len(F.pvals), 1)
}
