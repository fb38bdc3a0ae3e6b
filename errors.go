package aoc

import "errors"

var (
	// ErrQueueEmpty is returned when popping from an empty priority queue.
	ErrQueueEmpty = errors.New("aoc: priority queue is empty")
	// ErrValueNotFound is returned when re-prioritizing a value that is not queued.
	ErrValueNotFound = errors.New("aoc: value not in priority queue")
	// ErrOutOfBounds is returned when a fill seed lies outside the grid.
	ErrOutOfBounds = errors.New("aoc: point outside grid")
	// ErrInvalidRange is returned when constructing a range with from > to.
	ErrInvalidRange = errors.New("aoc: range start after end")
)
