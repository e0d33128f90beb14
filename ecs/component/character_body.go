package component

import "github.com/jakecoffman/cp"

// CharacterBody is the collision capsule of a walking entity, projected onto
// the ground plane as a chipmunk circle. Move queues a displacement that the
// character controller resolves on the next physics step.
type CharacterBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64

	Pending  Vec3
	Grounded bool
}

func (c *CharacterBody) Move(d Vec3) {
	c.Pending = c.Pending.Add(d)
}

var CharacterBodyComponent = NewComponent[CharacterBody]()

// Wall is a static collision segment on the ground plane.
type Wall struct {
	AX        float64
	AZ        float64
	BX        float64
	BZ        float64
	Thickness float64

	Shape *cp.Shape
}

var WallComponent = NewComponent[Wall]()

// PhysicsSpace is the singleton chipmunk space shared by the character
// controller.
type PhysicsSpace struct {
	Space *cp.Space
	Floor float64
}

var PhysicsSpaceComponent = NewComponent[PhysicsSpace]()
