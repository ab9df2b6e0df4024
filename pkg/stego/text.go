package stego

import (
	"LSBSteg/pkg/channel"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/transcode"
)

// digitsPerCode is the number of base-4 digits a code is split into (one per channel)
const digitsPerCode = 3

// HideText writes text into carrier in place, one code per pixel in row-major
// order. The code's base-4 digits go least significant first into the red,
// green and blue low bits. The text is validated before the grid is touched;
// a message longer than the grid is truncated silently (see TextCapacity).
func HideText(carrier *grid.Grid, text string) error {
	codes, err := transcode.Encode(text)
	if err != nil {
		return err
	}

	n := len(codes)
	if n > carrier.Len() {
		n = carrier.Len()
	}

	for i := 0; i < n; i++ {
		digits := splitCode(codes[i])
		p := carrier.Index(i)
		carrier.SetIndex(i, grid.Pixel{
			R: channel.SetLow(p.R, digits[0]),
			G: channel.SetLow(p.G, digits[1]),
			B: channel.SetLow(p.B, digits[2]),
		})
	}

	return nil
}

// TextScan describes one row-major pass over a carrier looking for a message
type TextScan struct {
	Text       string // the decoded message
	Codes      int    // pixels read, terminator excluded
	Skipped    int    // values that were not letters or space
	Terminated bool   // whether a terminator ended the scan
}

// RevealText reads codes in row-major order until it meets a terminator and
// decodes everything before it. Without a terminator the whole grid is decoded.
// Values that are not letters or space are skipped, so the result on a grid that
// never held a message is best-effort noise rather than an error.
func RevealText(carrier *grid.Grid) string {
	return ScanText(carrier).Text
}

// ScanText is RevealText with the bookkeeping analyzers need
func ScanText(carrier *grid.Grid) TextScan {
	var scan TextScan
	codes := make([]transcode.Code, 0, 64)

	for i := 0; i < carrier.Len(); i++ {
		code := joinCode(carrier.Index(i))
		if code == transcode.Terminator {
			scan.Terminated = true
			break
		}
		scan.Codes++
		if !transcode.Valid(code) {
			scan.Skipped++
			continue
		}
		codes = append(codes, code)
	}

	// every code was checked above
	scan.Text, _ = transcode.Decode(codes)
	return scan
}

// TextCapacity returns how many characters fit in carrier, leaving room for the terminator
func TextCapacity(carrier *grid.Grid) int {
	if carrier.Len() == 0 {
		return 0
	}
	return carrier.Len() - 1
}

func splitCode(code transcode.Code) [digitsPerCode]uint8 {
	var digits [digitsPerCode]uint8
	v := uint8(code)
	for i := range digits {
		digits[i] = v % 4
		v /= 4
	}
	return digits
}

func joinCode(p grid.Pixel) transcode.Code {
	return transcode.Code(channel.Low(p.B)<<4 | channel.Low(p.G)<<2 | channel.Low(p.R))
}
