package memory

import "github.com/rivo/uniseg"

// graphemeLen returns the number of grapheme clusters in s.
func graphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// byteAt returns the byte index of the g-th grapheme cluster in s.
// g at or past the cluster count returns len(s).
func byteAt(s string, g int) int {
	if g <= 0 {
		return 0
	}
	rest := s
	state := -1
	off := 0
	for i := 0; i < g && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		off += len(cluster)
	}
	return off
}
