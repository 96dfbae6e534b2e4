package mapok

// Box moves v into a freshly allocated heap cell and returns the owning
// pointer. It is the mapper used by BoxOk, exported for direct use with
// MapOk.
func Box[T any](v T) *T {
	return &v
}

// BoxOk attaches a mapping adapter that boxes every success value:
// equivalent to MapOk(it, Box[T]). Each success element gets storage
// distinct from the source's; failure elements pass through with a nil
// pointer and the error untouched.
func BoxOk[T any](it Iter[T]) Iter[*T] {
	return MapOk(it, Box[T])
}
