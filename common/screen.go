package common

// Logical screen size. Ebiten scales this to the window.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
