package fixedarray

// Set copies src element-wise into a.
func (a *Array[T, A]) Set(src *Array[T, A]) {
	a.panicIfReleased()
	src.panicIfReleased()
	a.reattach()
	copy(a.slots(), src.view())
}

// Copy copies the M elements of src into dst[0:M]; dst[M:N] is left as is.
// M > N is a BoundsError and leaves dst unchanged.
func Copy[T, A, B any](dst *Array[T, A], src *Array[T, B]) error {
	dst.panicIfReleased()
	src.panicIfReleased()
	if err := dst.checkFit(src.Len()); err != nil {
		return err
	}
	dst.reattach()
	copy(dst.slots(), src.view())
	return nil
}

// Move moves the elements of src into dst, then zeroes src and resets its
// iterator pair to the null sentinel. Moving an array into itself does nothing.
func Move[T, A, B any](dst *Array[T, A], src *Array[T, B]) error {
	if any(dst) == any(src) {
		return nil
	}
	if err := Copy(dst, src); err != nil {
		return err
	}
	src.empty()
	return nil
}

// Assign stores v into the count slots starting at offset. The single-slot
// form is Assign(v, i, 1). A span reaching past N is a BoundsError and
// leaves a unchanged.
func (a *Array[T, A]) Assign(v T, offset, count int) error {
	a.panicIfDetached()
	if err := a.checkSpan(offset, count); err != nil {
		return err
	}
	s := a.slots()[offset : offset+count]
	for i := range s {
		s[i] = v
	}
	return nil
}

// Fill stores v into every slot.
func (a *Array[T, A]) Fill(v T) {
	a.panicIfDetached()
	// The whole span always fits.
	s := a.slots()
	for i := range s {
		s[i] = v
	}
}

// AssignSlice copies seq into the slots starting at offset.
// offset+len(seq) > N is a BoundsError and leaves a unchanged.
func (a *Array[T, A]) AssignSlice(seq []T, offset int) error {
	a.panicIfDetached()
	if err := a.checkSpan(offset, len(seq)); err != nil {
		return err
	}
	copy(a.slots()[offset:], seq)
	return nil
}
