//go:build fixedarray_unchecked

package fixedarray

// BoundsChecked is false: callers are responsible for keeping every span
// inside the capacity.
const BoundsChecked = false
