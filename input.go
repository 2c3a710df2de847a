package dui

// Input holds the pointer state for the current frame.
//
// Hosts call Sample exactly once per frame, before any widgets are drawn.
// Pressed is the press edge: true only on the first sampled frame where the
// button is down. Sampling more than once per frame consumes the edge early
// and widgets drawn afterwards will miss the click.
type Input struct {
	Pos     Vec2 // Pointer position in window pixels
	Down    bool // Button held this frame
	Pressed bool // Button transitioned up->down this frame
}

// Sample records the pointer state for a new frame and computes the
// press edge against the previously sampled frame.
func (in *Input) Sample(x, y float32, down bool) {
	in.Pressed = down && !in.Down
	in.Pos = Vec2{X: x, Y: y}
	in.Down = down
}

// Reset clears all input state, including the held-button memory used for
// edge detection.
func (in *Input) Reset() {
	*in = Input{}
}
