package ddt

// Color is one RGB LED color.
type Color struct {
	R, G, B uint8
}

// FlattenColors packs colors into the flat RGB byte sequence LedBuffer.Set
// consumes.
func FlattenColors(colors []Color) []byte {
	out := make([]byte, 0, len(colors)*3)
	for _, c := range colors {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// Board0Frame builds a full 61-triple board-0 payload with the left and
// right side button colors set. The 59 interior triples are required by the
// board-0 contract but never reach the device.
func Board0Frame(left, right Color) []byte {
	frame := make([]byte, Board0LedCount*3)
	copy(frame[0:3], []byte{left.R, left.G, left.B})
	copy(frame[(Board0LedCount-1)*3:], []byte{right.R, right.G, right.B})
	return frame
}
