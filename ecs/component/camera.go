package component

// Camera follows a target on the ground plane. The renderer draws the world
// centered on the camera's Transform, scaled by Zoom.
type Camera struct {
	Zoom float64
	// Smoothness is the fraction of the remaining distance kept each frame;
	// zero snaps to the target.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
