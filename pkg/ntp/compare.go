package ntp

import "cmp"

// Compare orders timestamps by their packed 64-bit value: seconds first, then
// fraction. It returns -1, 0 or +1.
func Compare(a, b Timestamp) int {
	return a.Compare(b)
}

func (t Timestamp) Compare(u Timestamp) int {
	if c := cmp.Compare(t.seconds, u.seconds); c != 0 {
		return c
	}
	return cmp.Compare(t.fraction, u.fraction)
}

func (t Timestamp) Before(u Timestamp) bool {
	return t.Compare(u) < 0
}

func (t Timestamp) After(u Timestamp) bool {
	return t.Compare(u) > 0
}

func (t Timestamp) Equal(u Timestamp) bool {
	return t == u
}
