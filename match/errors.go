// SPDX-License-Identifier: MIT
// Package: kanjirec/match
//
// errors.go — sentinel errors for the match package.

package match

import "errors"

var (
	// ErrFinished indicates a mutation of a finished List.
	ErrFinished = errors.New("match: list already finished")

	// ErrNotFinished indicates a query before Finish.
	ErrNotFinished = errors.New("match: list not finished")

	// ErrNotFound indicates a label absent from the List.
	ErrNotFound = errors.New("match: kanji not found")

	// ErrUnknownAlgorithm indicates an algorithm key with no descriptor.
	ErrUnknownAlgorithm = errors.New("match: unknown algorithm")
)
