package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeCharacter
)

const (
	defaultCharacterRadius = 0.5
	// Longest sub-move. Kept well under any character radius so a sub-move
	// never carries a centre across a wall's centre line.
	maxSubMove        = 0.05
	pushoutIterations = 4
)

// CharacterControllerSystem resolves queued character displacements against
// the level walls. The ground plane (X, Z) maps to chipmunk (X, Y). Bodies
// are kinematic: each move is split into short sub-moves and after every
// sub-move the circle is pushed out of any wall it overlaps, which also
// slides it along the wall. Height is integrated directly and clamped at the
// floor.
type CharacterControllerSystem struct{}

func NewCharacterControllerSystem() *CharacterControllerSystem {
	return &CharacterControllerSystem{}
}

// NewPhysicsSpace builds the gravity-free space that holds walls and bodies.
func NewPhysicsSpace(floor float64) *component.PhysicsSpace {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &component.PhysicsSpace{Space: space, Floor: floor}
}

func (c *CharacterControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, ps, ok := ecs.Single(w, component.PhysicsSpaceComponent.Kind())
	if !ok || ps.Space == nil {
		return
	}

	walls := c.syncWalls(w, ps)
	c.syncBodies(w, ps)

	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, body *component.CharacterBody, transform *component.Transform) {
			pos := slide(walls, body.Body.Position(), cp.Vector{X: body.Pending.X, Y: body.Pending.Z}, body.Radius)
			body.Body.SetPosition(pos)
			transform.X = pos.X
			transform.Z = pos.Y

			transform.Y += body.Pending.Y
			body.Grounded = false
			if transform.Y <= ps.Floor {
				transform.Y = ps.Floor
				body.Grounded = true
			}
			body.Pending = component.Vec3{}
		})
}

func slide(walls []*cp.Shape, pos, move cp.Vector, radius float64) cp.Vector {
	steps := int(math.Ceil(move.Length() / maxSubMove))
	if steps < 1 {
		steps = 1
	}
	step := move.Mult(1 / float64(steps))
	for range steps {
		pos = depenetrate(walls, pos.Add(step), radius)
	}
	return pos
}

// depenetrate moves a circle at pos out of every wall it overlaps, along the
// wall's surface gradient.
func depenetrate(walls []*cp.Shape, pos cp.Vector, radius float64) cp.Vector {
	for range pushoutIterations {
		resolved := true
		for _, wall := range walls {
			info := wall.PointQuery(pos)
			if info.Distance >= radius {
				continue
			}
			pos = pos.Add(info.Gradient.Mult(radius - info.Distance))
			resolved = false
		}
		if resolved {
			break
		}
	}
	return pos
}

func (c *CharacterControllerSystem) syncWalls(w *ecs.World, ps *component.PhysicsSpace) []*cp.Shape {
	var walls []*cp.Shape
	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		if wall.Shape == nil {
			shape := cp.NewSegment(ps.Space.StaticBody,
				cp.Vector{X: wall.AX, Y: wall.AZ},
				cp.Vector{X: wall.BX, Y: wall.BZ},
				math.Max(wall.Thickness, 0.01))
			shape.SetFriction(0)
			shape.SetElasticity(0)
			shape.SetCollisionType(collisionTypeWall)
			wall.Shape = ps.Space.AddShape(shape)
		}
		walls = append(walls, wall.Shape)
	})
	return walls
}

func (c *CharacterControllerSystem) syncBodies(w *ecs.World, ps *component.PhysicsSpace) {
	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, body *component.CharacterBody, transform *component.Transform) {
			if body.Body != nil {
				return
			}
			if body.Radius <= 0 {
				body.Radius = defaultCharacterRadius
			}
			b := cp.NewKinematicBody()
			b.SetPosition(cp.Vector{X: transform.X, Y: transform.Z})
			shape := cp.NewCircle(b, body.Radius, cp.Vector{})
			shape.SetFriction(0)
			shape.SetElasticity(0)
			shape.SetCollisionType(collisionTypeCharacter)

			body.Body = ps.Space.AddBody(b)
			body.Shape = ps.Space.AddShape(shape)
		})
}
