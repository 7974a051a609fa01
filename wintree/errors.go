package wintree

import "errors"

var (
	// ErrRootExists is returned by Open when the tree already has a root.
	ErrRootExists = errors.New("window tree already has a root")
	// ErrUnknownWindow is returned when an ID names no live window.
	ErrUnknownWindow = errors.New("unknown window")
	// ErrNotPair is returned when a pair-only operation names a leaf.
	ErrNotPair = errors.New("window is not a pair")
	// ErrNotLeaf is returned when a leaf-only operation names a pair.
	ErrNotLeaf = errors.New("window is not a leaf")
	// ErrPairWindow is returned when a caller asks to create a pair
	// window directly.
	ErrPairWindow = errors.New("pair windows are created only by splitting")
)
