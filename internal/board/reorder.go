package board

import "slices"

// clamp limits i to [0, n].
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Reorder moves the element at from to position to within items. The element
// is removed first; to indexes the shortened list and is clamped to its
// bounds. The input slice is not modified.
func Reorder(items []Task, from, to int) []Task {
	out := slices.Clone(items)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, clamp(to, len(out)), moved)
}

// Transfer moves the element at from in src to position to in dst. to is
// clamped to [0, len(dst)]. Neither input slice is modified.
func Transfer(src []Task, from int, dst []Task, to int) (newSrc, newDst []Task) {
	moved := src[from]
	newSrc = slices.Delete(slices.Clone(src), from, from+1)
	newDst = slices.Insert(slices.Clone(dst), clamp(to, len(dst)), moved)
	return newSrc, newDst
}
