package component

import (
	"errors"
	"strconv"
	"sync/atomic"
)

// EntityID is a generational handle: the low 32 bits index a slot, the high 32
// bits count how many times that slot has been reused.
type EntityID uint64

const entityIndexBits = 32

func MakeEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<entityIndexBits | uint64(index))
}

func (e EntityID) Index() uint32 {
	return uint32(e)
}

func (e EntityID) Generation() uint32 {
	return uint32(uint64(e) >> entityIndexBits)
}

func (e EntityID) String() string {
	return strconv.FormatUint(uint64(e.Index()), 10) + "v" + strconv.FormatUint(uint64(e.Generation()), 10)
}

func (e EntityID) Valid() bool {
	return e.Index() > 0
}

// Kind tags an entity for renderers.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindHostile
	KindBoss
	KindProjectile
	KindHealer
	KindStealer
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHostile:
		return "hostile"
	case KindBoss:
		return "boss"
	case KindProjectile:
		return "projectile"
	case KindHealer:
		return "healer"
	case KindStealer:
		return "stealer"
	}
	return "unknown"
}

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind identifies one component storage in a world.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
