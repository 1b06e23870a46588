//go:build !fixedarray_unchecked

package fixedarray

// BoundsChecked reports whether bulk operations validate their span against
// the capacity. Build with -tags fixedarray_unchecked to compile the checks out.
const BoundsChecked = true
