// Package estimate computes how many independent trials, and how much
// wall-clock time at a fixed trial rate, are needed to find an n-symbol
// partial match with a given confidence.
//
// Each trial succeeds with probability 1/b^n, so the number of trials t
// needed to reach cumulative success probability p solves
//
//	1 - (1 - 1/b^n)^t = p
//
// which gives
//
//	t = ln(1 - p) / ln(1 - 1/b^n)
//
// See https://github.com/cathugger/mkp224o/issues/27#issuecomment-568291087.
// The denominator is evaluated with math.Log1p so that large n, where
// 1/b^n is far below the float64 epsilon, still yields a finite value.
package estimate
