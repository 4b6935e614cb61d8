// Package kalman implements causal Kalman filtering for scalar structural
// time series models.
//
// Two models are supported: the local-level model, where the hidden state is
// a random walk observed with additive Gaussian noise, and the local-linear
// trend model, where a second hidden state (the trend) is accumulated into
// the level at every step.
//
// Both filters come in two flavours: an in-place variant writing into
// caller-owned output slices, and an allocating convenience variant. The
// recursions are deliberately scalar-unrolled: the round-off tolerance used
// when clamping near-zero negative variances is calibrated against this
// exact sequence of floating point operations.
package kalman

import (
	structural "github.com/milosgajdos/go-structural"
)

// operation tags carried by mid-recursion numerical errors
const (
	opLocalLevel = "LocalLevelFilterInto"
	opTrend      = "LocalLinearTrendFilterInto"
)

var (
	_ structural.Filter = (*LocalLevel)(nil)
	_ structural.Filter = (*LocalLinearTrend)(nil)
)
