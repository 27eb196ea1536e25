package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite      = Color{1, 1, 1, 1}
	ColorBlack      = Color{0, 0, 0, 1}
	ColorRed        = Color{1, 0, 0, 1}
	ColorBackground = Color{0.16, 0.17, 0.2, 1}
	ColorWire       = Color{0.8, 0.82, 0.86, 1}
)
