package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeProp
	collisionTypeSolid
)

const (
	allCategories = ^uint(0)

	// floorZ is the walkable ground plane.
	floorZ = 0.0

	// staticHalfHeight makes walls effectively infinitely tall for traces.
	staticHalfHeight = 1e6
)

var (
	filterAll  = cp.ShapeFilter{Group: 0, Categories: allCategories, Mask: allCategories}
	filterNone = cp.ShapeFilter{Group: 0, Categories: 0, Mask: 0}
)

// PhysicsSystem moves bodies on the XY plane with a Chipmunk2D space and
// integrates vertical motion against the floor itself. It also answers line
// traces for gameplay systems.
type PhysicsSystem struct {
	space *cp.Space

	entities    map[ecs.Entity]*bodyInfo
	shapeOwners map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:       newSpace(),
		entities:    make(map[ecs.Entity]*bodyInfo),
		shapeOwners: make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body. Used when the arena is rebuilt.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapeOwners = make(map[*cp.Shape]ecs.Entity)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.applyFlags(w)
	ps.pushVelocities(w)

	if dt := w.Frame().World(); dt > 0 {
		ps.space.Step(dt)
	}

	ps.pullVelocities(w)
	ps.integrateVertical(w)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if info, ok := ps.entities[e]; ok {
			if body.Body == nil || body.Shape == nil {
				body.Body = info.body
				body.Shape = info.shape
			}
			return
		}

		info := ps.createBodyInfo(w, e, transform, body)
		if info == nil {
			return
		}
		ps.entities[e] = info
		ps.shapeOwners[info.shape] = e
		body.Body = info.body
		body.Shape = info.shape
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	if info == nil {
		return
	}
	if info.shape != nil {
		delete(ps.shapeOwners, info.shape)
		if ps.space.ContainsShape(info.shape) {
			ps.space.RemoveShape(info.shape)
		}
	}
	if !info.static && info.body != nil && ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, body *component.PhysicsBody) *bodyInfo {
	pos := cp.Vector{X: transform.Position.X(), Y: transform.Position.Y()}

	if body.Static {
		var shape *cp.Shape
		if body.Radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, body.Radius, pos)
		} else {
			width, length := boxSize(body)
			bb := cp.BB{L: pos.X, B: pos.Y, R: pos.X + length, T: pos.Y + width}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(body.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filterAll)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}

	character := ecs.Has(w, e, component.MovementComponent.Kind())

	var moment float64
	switch {
	case character:
		// characters never spin
		moment = math.Inf(1)
	case body.Radius > 0:
		moment = cp.MomentForCircle(mass, 0, body.Radius, cp.Vector{})
	default:
		width, length := boxSize(body)
		moment = cp.MomentForBox(mass, length, width)
	}

	cpBody := ps.space.AddBody(cp.NewBody(mass, moment))
	cpBody.SetPosition(pos)

	var shape *cp.Shape
	if body.Radius > 0 {
		shape = cp.NewCircle(cpBody, body.Radius, cp.Vector{})
	} else {
		width, length := boxSize(body)
		shape = cp.NewBox(cpBody, length, width, 0)
	}
	shape.SetFriction(body.Friction)
	if character {
		shape.SetCollisionType(collisionTypeCharacter)
	} else {
		shape.SetCollisionType(collisionTypeProp)
	}
	ps.space.AddShape(shape)

	info := &bodyInfo{body: cpBody, shape: shape}
	ps.applyShapeFilter(w, e, body, shape)
	return info
}

func boxSize(body *component.PhysicsBody) (width, length float64) {
	width, length = body.Width, body.Length
	if width <= 0 {
		width = 32
	}
	if length <= 0 {
		length = 32
	}
	return width, length
}

func (ps *PhysicsSystem) applyShapeFilter(w *ecs.World, e ecs.Entity, body *component.PhysicsBody, shape *cp.Shape) {
	if !body.CollisionEnabled {
		shape.SetFilter(filterNone)
		return
	}
	filter := filterAll
	if ignore, ok := ecs.Get(w, e, component.TraceIgnoreComponent.Kind()); ok {
		filter.Group = ignore.Group
	}
	shape.SetFilter(filter)
}

// applyFlags keeps the Chipmunk state in line with the component toggles that
// gameplay flips (interact disables simulation, gravity and collision).
func (ps *PhysicsSystem) applyFlags(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.static {
			return
		}
		ps.applyShapeFilter(w, e, body, info.shape)

		if !body.SimulatePhysics {
			// driven by gameplay: the transform is authoritative
			info.body.SetPosition(cp.Vector{X: transform.Position.X(), Y: transform.Position.Y()})
			info.body.SetVelocity(0, 0)
			info.shape.CacheBB()
		}
	})
}

func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, move *component.Movement) {
		info := ps.entities[e]
		if info == nil || info.static || !body.SimulatePhysics {
			return
		}
		c := ecs.CustomDilation(w, e)
		v := clipAgainstStatic(info.body, cp.Vector{X: move.Velocity.X() * c, Y: move.Velocity.Y() * c})
		info.body.SetVelocityVector(v)
	})
}

// clipAgainstStatic removes the part of v that drives body into static
// shapes it is already touching. Positions are integrated before contacts
// are solved, so an unclipped velocity walks the body through walls.
func clipAgainstStatic(body *cp.Body, v cp.Vector) cp.Vector {
	body.EachArbiter(func(arb *cp.Arbiter) {
		_, other := arb.Bodies()
		if other == nil || other.GetType() != cp.BODY_STATIC {
			return
		}
		n := arb.Normal()
		if into := v.Dot(n); into > 0 {
			v = v.Sub(n.Mult(into))
		}
	})
	return v
}

func (ps *PhysicsSystem) pullVelocities(w *ecs.World) {
	if w.Frame().World() <= 0 {
		return
	}
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, move *component.Movement) {
		info := ps.entities[e]
		if info == nil || info.static || !body.SimulatePhysics {
			return
		}
		c := ecs.CustomDilation(w, e)
		v := info.body.Velocity()
		move.Velocity = mgl64.Vec3{v.X / c, v.Y / c, move.Velocity.Z()}
	})
}

func (ps *PhysicsSystem) integrateVertical(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if body.Static || !body.SimulatePhysics {
			return
		}
		dt := ecs.DeltaFor(w, e)
		if dt <= 0 {
			return
		}

		move, character := ecs.Get(w, e, component.MovementComponent.Kind())

		vz := body.VelocityZ
		gravityScale := 1.0
		grounded := body.Grounded
		if character {
			vz = move.Velocity.Z()
			gravityScale = move.GravityScale
			grounded = move.Grounded
		}
		if !body.EnableGravity {
			gravityScale = 0
		}

		z := transform.Position.Z()
		if !grounded || vz > 0 {
			vz += common.Gravity * gravityScale * dt
			z += vz * dt
		}

		bottom := z - body.HalfHeight
		nowGrounded := false
		if bottom <= floorZ && vz <= 0 {
			if !grounded && character {
				_ = ecs.Add(w, e, component.LandedComponent.Kind(), &component.Landed{ImpactSpeed: -vz})
				w.Events().Push(ecs.Event{Kind: ecs.EventLanded, Entity: e, Value: -vz})
			}
			z = floorZ + body.HalfHeight
			vz = 0
			nowGrounded = true
		}

		transform.Position[2] = z
		if character {
			move.Velocity[2] = vz
			move.Grounded = nowGrounded
		} else {
			body.VelocityZ = vz
			if nowGrounded && body.Friction > 0 {
				ps.applyGroundFriction(e, body.Friction, dt)
			}
		}
		body.Grounded = nowGrounded
	})
}

func (ps *PhysicsSystem) applyGroundFriction(e ecs.Entity, friction, dt float64) {
	info := ps.entities[e]
	if info == nil {
		return
	}
	keep := math.Max(0, 1-friction*4*dt)
	info.body.SetVelocityVector(info.body.Velocity().Mult(keep))
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.static || !body.SimulatePhysics {
			return
		}
		p := info.body.Position()
		transform.Position[0] = p.X
		transform.Position[1] = p.Y
	})
}

// verticalExtent returns the Z range a body occupies.
func verticalExtent(w *ecs.World, e ecs.Entity) (lo, hi float64, ok bool) {
	body, okB := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	transform, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	if !okB || !okT {
		return 0, 0, false
	}
	if body.Static {
		return -staticHalfHeight, staticHalfHeight, true
	}
	z := transform.Position.Z()
	return z - body.HalfHeight, z + body.HalfHeight, true
}
