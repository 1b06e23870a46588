package fixedarray

import "unsafe"

// ElemSize returns the size in bytes of one slot.
func (a *Array[T, A]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// StorageBytes returns the size in bytes of the inline storage.
func (a *Array[T, A]) StorageBytes() int {
	return int(unsafe.Sizeof(a.storage))
}

// Utilization returns Len/Cap (0.0 to 1.0). It drops to 0 once the array
// has been moved from or released, and is 0 for N == 0.
func (a *Array[T, A]) Utilization() float64 {
	if a.n == 0 {
		return 0
	}
	return float64(a.Len()) / float64(a.n)
}

// Metrics returns a snapshot of the array's shape and state.
func (a *Array[T, A]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Capacity:     a.Cap(),
		Length:       a.Len(),
		ElemSize:     a.ElemSize(),
		StorageBytes: a.StorageBytes(),
		Utilization:  a.Utilization(),
		Moved:        a.Moved(),
		Released:     a.released,
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Capacity     int     // N
	Length       int     // Published length: N, or 0 once detached
	ElemSize     int     // Bytes per slot
	StorageBytes int     // Bytes of inline storage
	Utilization  float64 // Length / Capacity
	Moved        bool    // Emptied by a move
	Released     bool    // Destroyed by Release
}
