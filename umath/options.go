// Package umath: functional configuration for the operation catalogue.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors covering the catalogue keywords (unit, dtype,
//     num, endpoint, base, k, axis, ddof, mode, indexing, wrap, ...),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// One Options type serves every operation; each operation reads only the
// fields it documents and ignores the rest.
package umath

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNum is the sample count of Linspace and Logspace.
	DefaultNum = 50

	// DefaultEndpoint keeps the stop value inside Linspace and Logspace.
	DefaultEndpoint = true

	// DefaultBase is the Logspace exponent base.
	DefaultBase = 10.0

	// DefaultK is the diagonal offset of Eye, Tri, Tril, Triu and Diag.
	DefaultK = 0

	// DefaultAxis is the split axis of ArraySplit.
	DefaultAxis = 0

	// DefaultDdof is the delta-degrees-of-freedom of Var and NaNVar.
	DefaultDdof = 0

	// DefaultIndexing is the Meshgrid layout (Cartesian).
	DefaultIndexing = tensor.IndexXY

	// DefaultMode is the Convolve window selection.
	DefaultMode = tensor.ConvFull
)

// ---------- Internal panic messages (no magic strings) ----------

const panicUDTypeInvalid = "umath: WithDType: unknown dtype"

// ---------- Public option type (functional) ----------

// Option mutates internal catalogue options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Unexported fields prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	unit    dim.Dimension // WithUnit payload, meaningful when unitSet
	unitSet bool

	dtype    tensor.DType // forwarded to the engine when dtypeSet
	dtypeSet bool

	num        int
	endpoint   bool
	base       float64
	k          int
	cols       int // Eye/Tri/Vander width; negative means square or input-sized
	axis       int
	ddof       int
	increasing bool
	wrap       bool
	indexing   string
	mode       string
}

// WithUnit declares the Dimension a creation call should carry. Against a
// dimensioned operand the declared Dimension is CHECKED, never overriding;
// against a bare operand it is attached.
func WithUnit(d dim.Dimension) Option {
	return func(o *Options) { o.unit, o.unitSet = d, true }
}

// WithDType selects the element interpretation of the constructed buffer.
// Panics with a stable message on an unknown dtype (programmer error).
func WithDType(dt tensor.DType) Option {
	if dt != tensor.Float64 && dt != tensor.Int64 && dt != tensor.Bool {
		panic(panicUDTypeInvalid)
	}

	return func(o *Options) { o.dtype, o.dtypeSet = dt, true }
}

// WithNum sets the Linspace / Logspace sample count.
func WithNum(n int) Option {
	return func(o *Options) { o.num = n }
}

// WithEndpoint selects whether Linspace / Logspace include the stop value.
func WithEndpoint(include bool) Option {
	return func(o *Options) { o.endpoint = include }
}

// WithBase sets the Logspace exponent base.
func WithBase(b float64) Option {
	return func(o *Options) { o.base = b }
}

// WithK sets the diagonal offset of Eye, Tri, Tril, Triu and Diag.
func WithK(k int) Option {
	return func(o *Options) { o.k = k }
}

// WithCols sets the column count of Eye, Tri and Vander; without it the
// matrix is square (Eye, Tri) or as wide as the input (Vander).
func WithCols(n int) Option {
	return func(o *Options) { o.cols = n }
}

// WithAxis sets the ArraySplit axis.
func WithAxis(axis int) Option {
	return func(o *Options) { o.axis = axis }
}

// WithDdof sets the delta-degrees-of-freedom of Var and NaNVar.
func WithDdof(ddof int) Option {
	return func(o *Options) { o.ddof = ddof }
}

// WithIncreasing orders Vander powers left-to-right.
func WithIncreasing(inc bool) Option {
	return func(o *Options) { o.increasing = inc }
}

// WithWrap lets FillDiagonal wrap around tall matrices.
func WithWrap(wrap bool) Option {
	return func(o *Options) { o.wrap = wrap }
}

// WithIndexing selects the Meshgrid layout, tensor.IndexXY or
// tensor.IndexIJ; the engine rejects anything else.
func WithIndexing(indexing string) Option {
	return func(o *Options) { o.indexing = indexing }
}

// WithMode selects the Convolve window, one of tensor.ConvFull,
// tensor.ConvSame, tensor.ConvValid; the engine rejects anything else.
func WithMode(mode string) Option {
	return func(o *Options) { o.mode = mode }
}

// ---------- Option Resolution ----------

// gatherOptions applies user-provided setters on top of defaults.
// The canonical internal entry for every catalogue operation.
func gatherOptions(user ...Option) Options {
	o := Options{
		num:      DefaultNum,
		endpoint: DefaultEndpoint,
		base:     DefaultBase,
		k:        DefaultK,
		cols:     -1,
		axis:     DefaultAxis,
		ddof:     DefaultDdof,
		indexing: DefaultIndexing,
		mode:     DefaultMode,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// engineOpts forwards the dtype choice to the engine when one was made.
func (o Options) engineOpts() []tensor.Option {
	if !o.dtypeSet {
		return nil
	}

	return []tensor.Option{tensor.WithDType(o.dtype)}
}
