package helpers

// GetBit reports whether bit n of b is set.
func GetBit(b uint8, n uint8) bool {
	return b&(1<<n) != 0
}

// SetBit sets or clears bit n of *b.
func SetBit(b *uint8, n uint8, val bool) {
	if val {
		*b |= 1 << n
	} else {
		*b &^= 1 << n
	}
}
