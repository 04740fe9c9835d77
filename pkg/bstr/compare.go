package bstr

// Greater reports whether a sorts after b. Bytes are compared as unsigned
// values up to the shorter length; when those are all equal the longer
// String is greater.
func Greater(a, b *String) bool {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if a.buf[i] > b.buf[i] {
			return true
		}
		if a.buf[i] < b.buf[i] {
			return false
		}
	}
	return a.size > b.size
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b *String) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// Less reports whether a sorts before b.
func Less(a, b *String) bool { return Greater(b, a) }

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual(a, b *String) bool { return !Greater(b, a) }

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual(a, b *String) bool { return !Greater(a, b) }

// NotEqual reports whether a and b differ.
func NotEqual(a, b *String) bool { return !Equal(a, b) }

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
// It fits slices.SortFunc.
func Compare(a, b *String) int {
	switch {
	case Equal(a, b):
		return 0
	case Greater(a, b):
		return 1
	default:
		return -1
	}
}
