// SPDX-License-Identifier: MIT
// Package tensor: einsum (Einstein summation) planner and executor.
//
// Implementation:
//   - ParsePlan lowers a subscript expression ("ij,jk->ik") into an explicit
//     Plan: a list of steps over numbered slots. Slots 0..n-1 are the
//     operands; every executed step appends its result as a fresh slot.
//   - Two step kinds cover the whole catalogue. StepRearrange maps one slot
//     through a subscript relabeling (transpose, diagonal extraction, axis
//     summation). StepContract multiplies two slots and sums the letters
//     absent from its output.
//   - Multi-operand expressions left-fold: operand 0 is contracted with
//     operand 1, the result with operand 2, and so on. Each intermediate
//     keeps exactly the letters still needed by later operands or by the
//     final output.
//
// Kernel: both step kinds run on one virtual-index odometer. Every distinct
// letter becomes a loop variable; a letter repeated inside one subscript
// contributes the sum of its axis strides, which walks the diagonal for
// free. Letters missing from the step output accumulate, which performs the
// summation.
//
// Determinism: odometer order is fixed (first-occurrence letter order),
// identical on every run.

package tensor

import (
	"strings"
)

// opEinsum tags einsum errors.
const opEinsum = "Einsum"

// StepKind discriminates the two einsum step flavors.
type StepKind int

const (
	// StepRearrange relabels a single slot: permutation, diagonal, summation.
	StepRearrange StepKind = iota

	// StepContract multiplies two slots and sums dropped letters.
	StepContract
)

// String renders the step kind for diagnostics.
func (k StepKind) String() string {
	switch k {
	case StepRearrange:
		return "rearrange"
	case StepContract:
		return "contract"
	default:
		return "unknown"
	}
}

// Step is one executable einsum stage over numbered slots.
type Step struct {
	// Kind selects the kernel.
	Kind StepKind

	// Left is the slot index of the first (or only) input.
	Left int

	// Right is the slot index of the second input; -1 for StepRearrange.
	Right int

	// LeftSubs / RightSubs are the subscripts of the inputs.
	LeftSubs  string
	RightSubs string

	// OutSubs labels the step result; its letters are distinct.
	OutSubs string
}

// Plan is a compiled einsum expression: steps over a growing slot list.
// Slot len(operands)+i holds the result of Steps[i]; the last step's result
// is the expression value.
type Plan struct {
	// Steps execute in order.
	Steps []Step

	// Operands is the number of input slots the plan expects.
	Operands int

	// Result is the subscript string of the final slot.
	Result string
}

// ParsePlan compiles subscripts against operand shapes.
//
// Accepted grammar: comma-separated operand subscripts of ASCII letters,
// optionally followed by "->" and an output subscript. Spaces are ignored.
// Ellipsis is not supported. With "->" absent the output is implicit:
// letters occurring exactly once across all operands, in byte order.
//
// Errors: ErrBadSubscripts (syntax, unknown output letter, repeated output
// letter), ErrShapeMismatch (rank disagreement, conflicting extents for one
// letter), ErrEmptyInput (no operands).
// Complexity: O(total subscript length).
func ParsePlan(subscripts string, shapes []Shape) (*Plan, error) {
	opSubs, outSubs, err := parseSubscripts(subscripts, len(shapes))
	if err != nil {
		return nil, tensorErrorf(opEinsum, err)
	}

	// Letter extents must be consistent everywhere, including between the
	// two axes of an in-operand repeat.
	extents := make(map[byte]int)
	for i, subs := range opSubs {
		if len(subs) != len(shapes[i]) {
			return nil, tensorErrorf(opEinsum, ErrShapeMismatch)
		}
		for j := 0; j < len(subs); j++ {
			c := subs[j]
			if prev, ok := extents[c]; ok && prev != shapes[i][j] {
				return nil, tensorErrorf(opEinsum, ErrShapeMismatch)
			}
			extents[c] = shapes[i][j]
		}
	}
	for i := 0; i < len(outSubs); i++ {
		if _, ok := extents[outSubs[i]]; !ok {
			return nil, tensorErrorf(opEinsum, ErrBadSubscripts)
		}
	}

	p := &Plan{Operands: len(opSubs), Result: outSubs}

	// Single operand: one rearrange covers diagonal, permute and sum.
	if len(opSubs) == 1 {
		p.Steps = []Step{{
			Kind:     StepRearrange,
			Left:     0,
			Right:    -1,
			LeftSubs: opSubs[0],
			OutSubs:  outSubs,
		}}

		return p, nil
	}

	// Dedup repeated letters per operand first, so the fold below always
	// contracts distinct-letter slots.
	// Track the live slot and subscripts of every operand.
	slot := make([]int, len(opSubs))
	subs := make([]string, len(opSubs))
	next := len(opSubs)
	for i, s := range opSubs {
		slot[i], subs[i] = i, s
		if d := dedupLetters(s); d != s {
			p.Steps = append(p.Steps, Step{
				Kind:     StepRearrange,
				Left:     i,
				Right:    -1,
				LeftSubs: s,
				OutSubs:  d,
			})
			slot[i], subs[i] = next, d
			next++
		}
	}

	// Left fold: contract the accumulator with each remaining operand,
	// keeping only letters with a future.
	curSlot, curSubs := slot[0], subs[0]
	for k := 1; k < len(opSubs); k++ {
		needed := make(map[byte]bool)
		for i := 0; i < len(outSubs); i++ {
			needed[outSubs[i]] = true
		}
		for j := k + 1; j < len(opSubs); j++ {
			for i := 0; i < len(subs[j]); i++ {
				needed[subs[j][i]] = true
			}
		}
		var out strings.Builder
		for i := 0; i < len(curSubs); i++ {
			if needed[curSubs[i]] {
				out.WriteByte(curSubs[i])
			}
		}
		for i := 0; i < len(subs[k]); i++ {
			c := subs[k][i]
			if needed[c] && !strings.ContainsRune(curSubs, rune(c)) {
				out.WriteByte(c)
			}
		}
		p.Steps = append(p.Steps, Step{
			Kind:      StepContract,
			Left:      curSlot,
			Right:     slot[k],
			LeftSubs:  curSubs,
			RightSubs: subs[k],
			OutSubs:   out.String(),
		})
		curSlot, curSubs = next, out.String()
		next++
	}

	// The fold ends with exactly the output letters; fix the order if the
	// caller asked for a different one.
	if curSubs != outSubs {
		p.Steps = append(p.Steps, Step{
			Kind:     StepRearrange,
			Left:     curSlot,
			Right:    -1,
			LeftSubs: curSubs,
			OutSubs:  outSubs,
		})
	}

	return p, nil
}

// Einsum parses and executes in one call.
func Einsum(subscripts string, operands ...*Tensor) (*Tensor, error) {
	if err := ValidateAllNotNil(operands...); err != nil {
		return nil, tensorErrorf(opEinsum, err)
	}
	shapes := make([]Shape, len(operands))
	for i, t := range operands {
		shapes[i] = t.shape
	}
	p, err := ParsePlan(subscripts, shapes)
	if err != nil {
		return nil, err
	}

	return ExecutePlan(p, operands)
}

// ExecutePlan runs a compiled plan over operand slots and returns the final
// slot. Operand count and shapes must match what the plan was parsed with.
func ExecutePlan(p *Plan, operands []*Tensor) (*Tensor, error) {
	if p == nil || len(operands) != p.Operands {
		return nil, tensorErrorf(opEinsum, ErrBadSubscripts)
	}
	if err := ValidateAllNotNil(operands...); err != nil {
		return nil, tensorErrorf(opEinsum, err)
	}

	dt := Int64
	for _, t := range operands {
		if t.dtype != Int64 {
			dt = Float64

			break
		}
	}

	slots := make([]*Tensor, 0, len(operands)+len(p.Steps))
	slots = append(slots, operands...)
	for _, st := range p.Steps {
		var (
			out *Tensor
			err error
		)
		switch st.Kind {
		case StepRearrange:
			out, err = rearrange(slots[st.Left], st.LeftSubs, st.OutSubs, dt)
		case StepContract:
			out, err = contractPair(slots[st.Left], st.LeftSubs, slots[st.Right], st.RightSubs, st.OutSubs, dt)
		default:
			err = ErrBadSubscripts
		}
		if err != nil {
			return nil, tensorErrorf(opEinsum, err)
		}
		slots = append(slots, out)
	}
	if len(slots) == len(operands) {
		// A plan with no steps never parses; guard anyway.
		return nil, tensorErrorf(opEinsum, ErrBadSubscripts)
	}

	return slots[len(slots)-1], nil
}

// parseSubscripts splits and sanitizes the expression, deriving the implicit
// output when "->" is absent.
func parseSubscripts(subscripts string, wantOperands int) ([]string, string, error) {
	clean := strings.ReplaceAll(subscripts, " ", "")
	if strings.Contains(clean, ".") {
		return nil, "", ErrBadSubscripts // ellipsis unsupported
	}

	lhs, rhs := clean, ""
	explicit := false
	if i := strings.Index(clean, "->"); i >= 0 {
		lhs, rhs = clean[:i], clean[i+2:]
		explicit = true
		if strings.Contains(rhs, "->") || strings.Contains(rhs, ",") {
			return nil, "", ErrBadSubscripts
		}
	}

	opSubs := strings.Split(lhs, ",")
	if wantOperands == 0 || len(opSubs) != wantOperands {
		return nil, "", ErrEmptyInput
	}
	counts := make(map[byte]int)
	for _, s := range opSubs {
		for i := 0; i < len(s); i++ {
			if !isSubscriptLetter(s[i]) {
				return nil, "", ErrBadSubscripts
			}
			counts[s[i]]++
		}
	}

	if explicit {
		seen := make(map[byte]bool)
		for i := 0; i < len(rhs); i++ {
			c := rhs[i]
			if !isSubscriptLetter(c) || seen[c] {
				return nil, "", ErrBadSubscripts
			}
			seen[c] = true
		}

		return opSubs, rhs, nil
	}

	// Implicit output: letters seen exactly once, in byte order.
	var out strings.Builder
	for c := byte('A'); c <= 'Z'; c++ {
		if counts[c] == 1 {
			out.WriteByte(c)
		}
	}
	for c := byte('a'); c <= 'z'; c++ {
		if counts[c] == 1 {
			out.WriteByte(c)
		}
	}

	return opSubs, out.String(), nil
}

// isSubscriptLetter accepts ASCII letters only.
func isSubscriptLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// lettersCovered reports whether every letter of need occurs in have.
func lettersCovered(need, have string) bool {
	for i := 0; i < len(need); i++ {
		if !strings.ContainsRune(have, rune(need[i])) {
			return false
		}
	}

	return true
}

// dedupLetters keeps the first occurrence of every letter.
func dedupLetters(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(out.String(), rune(s[i])) {
			out.WriteByte(s[i])
		}
	}

	return out.String()
}

// loopAxes is the virtual-index space of one kernel invocation: distinct
// letters with their extents, plus per-letter total offset contributions
// into each participating buffer (repeated letters sum their strides, which
// is exactly the diagonal walk).
type loopAxes struct {
	extents []int
	strides [][]int // one row per buffer: offset delta per letter
}

// buildAxes merges subscript/shape pairs into a loop space. The last pair is
// the output. Returns ErrShapeMismatch when one letter sees two extents.
func buildAxes(subs []string, shapes []Shape) (*loopAxes, error) {
	order := make([]byte, 0, 8)
	extent := make(map[byte]int)
	for p, s := range subs {
		for i := 0; i < len(s); i++ {
			c := s[i]
			prev, ok := extent[c]
			if !ok {
				extent[c] = shapes[p][i]
				order = append(order, c)
			} else if prev != shapes[p][i] {
				return nil, ErrShapeMismatch
			}
		}
	}

	la := &loopAxes{
		extents: make([]int, len(order)),
		strides: make([][]int, len(subs)),
	}
	pos := make(map[byte]int, len(order))
	for i, c := range order {
		pos[c] = i
		la.extents[i] = extent[c]
	}
	for p, s := range subs {
		row := make([]int, len(order))
		str := shapes[p].Strides()
		for i := 0; i < len(s); i++ {
			row[pos[s[i]]] += str[i]
		}
		la.strides[p] = row
	}

	return la, nil
}

// runLoop walks the full virtual-index space, calling visit with the current
// offset into every buffer. Offsets update incrementally, odometer style.
func (la *loopAxes) runLoop(visit func(offs []int)) {
	total := 1
	for _, e := range la.extents {
		total *= e
	}
	if total == 0 {
		return
	}
	rank := len(la.extents)
	idx := make([]int, rank)
	offs := make([]int, len(la.strides))
	for n := 0; n < total; n++ {
		visit(offs)
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			for b := range offs {
				offs[b] += la.strides[b][ax]
			}
			if idx[ax] < la.extents[ax] {
				break
			}
			idx[ax] = 0
			for b := range offs {
				offs[b] -= la.strides[b][ax] * la.extents[ax]
			}
		}
	}
}

// outShapeOf maps output letters back to extents.
func outShapeOf(outSubs string, la *loopAxes, order map[byte]int) Shape {
	shape := make(Shape, len(outSubs))
	for i := 0; i < len(outSubs); i++ {
		shape[i] = la.extents[order[outSubs[i]]]
	}

	return shape
}

// letterOrder indexes the loop letters of subs pairs in first-occurrence
// order, mirroring buildAxes.
func letterOrder(subs ...string) map[byte]int {
	order := make(map[byte]int)
	for _, s := range subs {
		for i := 0; i < len(s); i++ {
			if _, ok := order[s[i]]; !ok {
				order[s[i]] = len(order)
			}
		}
	}

	return order
}

// rearrange executes a StepRearrange: out[outSubs] += t[inSubs] over the
// virtual-index space of inSubs.
func rearrange(t *Tensor, inSubs, outSubs string, dt DType) (*Tensor, error) {
	if len(inSubs) != len(t.shape) {
		return nil, ErrShapeMismatch
	}
	if !lettersCovered(outSubs, inSubs) {
		return nil, ErrBadSubscripts
	}
	order := letterOrder(inSubs, outSubs)
	la, err := buildAxes([]string{inSubs}, []Shape{t.shape})
	if err != nil {
		return nil, err
	}
	outShape := outShapeOf(outSubs, la, order)
	out := newTensor(outShape, dt)

	// Attach the output buffer as a second stride row.
	outStr := make([]int, len(la.extents))
	str := outShape.Strides()
	for i := 0; i < len(outSubs); i++ {
		outStr[order[outSubs[i]]] += str[i]
	}
	la.strides = append(la.strides, outStr)

	la.runLoop(func(offs []int) {
		out.data[offs[1]] += t.data[offs[0]]
	})

	return out, nil
}

// contractPair executes a StepContract: out[outSubs] += a[aSubs]·b[bSubs]
// over the joint virtual-index space.
func contractPair(a *Tensor, aSubs string, b *Tensor, bSubs, outSubs string, dt DType) (*Tensor, error) {
	if len(aSubs) != len(a.shape) || len(bSubs) != len(b.shape) {
		return nil, ErrShapeMismatch
	}
	if !lettersCovered(outSubs, aSubs+bSubs) {
		return nil, ErrBadSubscripts
	}
	order := letterOrder(aSubs, bSubs, outSubs)
	la, err := buildAxes([]string{aSubs, bSubs}, []Shape{a.shape, b.shape})
	if err != nil {
		return nil, err
	}
	outShape := outShapeOf(outSubs, la, order)
	out := newTensor(outShape, dt)

	outStr := make([]int, len(la.extents))
	str := outShape.Strides()
	for i := 0; i < len(outSubs); i++ {
		outStr[order[outSubs[i]]] += str[i]
	}
	la.strides = append(la.strides, outStr)

	la.runLoop(func(offs []int) {
		out.data[offs[2]] += a.data[offs[0]] * b.data[offs[1]]
	})

	return out, nil
}
