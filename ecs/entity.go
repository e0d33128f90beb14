package ecs

import "fmt"

// Entity is a handle to a slot in a World. The low half is the slot, the high
// half the epoch the slot was in when the handle was issued; destroying an
// entity advances its slot's epoch, so old handles to a reused slot fail
// IsAlive instead of aliasing the newcomer.
type Entity uint64

// NoEntity is the zero handle. Slots start at 1, so it never resolves.
const NoEntity Entity = 0

type (
	slot  uint32
	epoch uint32
)

func packEntity(s slot, ep epoch) Entity {
	return Entity(ep)<<32 | Entity(s)
}

func (e Entity) slot() slot   { return slot(e & 0xffffffff) }
func (e Entity) epoch() epoch { return epoch(e >> 32) }

// String renders the handle as slot#epoch for logs.
func (e Entity) String() string {
	if e == NoEntity {
		return "none"
	}
	return fmt.Sprintf("%d#%d", e.slot(), e.epoch())
}

func (e Entity) Valid() bool {
	return e.slot() != 0
}
