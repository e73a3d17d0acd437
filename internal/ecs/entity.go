package ecs

// EntityID names an entity. Ids are opaque and never reused within a World.
type EntityID uint64

// NilEntity is never handed out.
const NilEntity EntityID = 0

// ComponentType keys a component store.
type ComponentType uint8

// Component is any value stored on an entity.
type Component interface {
	Type() ComponentType
}

// Filter selects entities by the component types they must and must not carry.
type Filter struct {
	All  []ComponentType
	None []ComponentType
}
