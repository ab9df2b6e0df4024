// Package channel holds the bit operations on a single 8-bit colour channel.
// Every payload in this module lives in the two low-order bits of a channel.
package channel

const (
	// LowMask selects the two payload bits of a channel
	LowMask uint8 = 0b00000011
	// HighMask selects the six cover bits of a channel
	HighMask uint8 = 0b11111100
	// PayloadShift moves the top two bits of a byte into the payload slot and back
	PayloadShift = 6
)

// QuantizeDown clears the two low-order bits, rounding down to a multiple of 4
func QuantizeDown(c uint8) uint8 {
	return (c / 4) * 4
}

// InsertHighBits stores the two most significant bits of payload in the low bits of c
func InsertHighBits(c, payload uint8) uint8 {
	return (c & HighMask) | (payload >> PayloadShift)
}

// ExtractAsByte rebuilds the coarse approximation of a value stored with InsertHighBits.
// Only the two most significant bits of the original survive.
func ExtractAsByte(c uint8) uint8 {
	return (c & LowMask) << PayloadShift
}

// Low returns the 2-bit digit held in the low bits of c
func Low(c uint8) uint8 {
	return c & LowMask
}

// SetLow replaces the low bits of c with a 2-bit digit. Bits of digit above the slot are ignored.
func SetLow(c, digit uint8) uint8 {
	return (c & HighMask) | (digit & LowMask)
}
