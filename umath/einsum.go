// Package umath: Einsum, the one sequenced Dimension rule.
package umath

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

const opEinsum = "Einsum"

// Einsum evaluates the Einstein-summation expression over the operands and
// folds the result Dimension across the compiled plan: a contraction step
// multiplies the Dimensions of its two slots, a rearrange step passes its
// slot's Dimension through. The fold lands on the same Dimension an
// equivalent chain of Multiply / Dot calls would produce, and the unitless
// collapse applies to it like everywhere else.
func Einsum(subscripts string, operands ...any) (Operand, error) {
	ops, err := coerceAll(opEinsum, operands...)
	if err != nil {
		return Operand{}, err
	}
	bufs := make([]*tensor.Tensor, len(ops))
	shapes := make([]tensor.Shape, len(ops))
	for i, o := range ops {
		if o.buf == nil {
			return Operand{}, umathErrorf(opEinsum, tensor.ErrNilTensor)
		}
		bufs[i] = o.buf
		shapes[i] = o.buf.Shape()
	}
	p, err := tensor.ParsePlan(subscripts, shapes)
	if err != nil {
		return Operand{}, err
	}

	// Fold over plan slots: slot i < len(ops) holds operand i, slot
	// len(ops)+j holds the result of step j; the last slot is the value.
	dims := make([]dim.Dimension, len(ops), len(ops)+len(p.Steps))
	for i, o := range ops {
		dims[i] = o.Dim()
	}
	for _, st := range p.Steps {
		if st.Kind == tensor.StepContract {
			dims = append(dims, dims[st.Left].Mul(dims[st.Right]))
			continue
		}
		dims = append(dims, dims[st.Left])
	}

	t, err := tensor.ExecutePlan(p, bufs)

	return wrap(t, err, dims[len(dims)-1])
}
