package ecs

type opKind uint8

const (
	opAdd opKind = iota
	opRemove
	opDestroy
	opSpawn
)

type command struct {
	op    opKind
	id    EntityID
	comp  Component
	ctype ComponentType
	spawn []Component
}

// CommandBuffer records structural mutations proposed while systems read a
// World snapshot. Nothing touches the world until Flush.
type CommandBuffer struct {
	cmds []command
}

// NewCommandBuffer returns an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{cmds: make([]command, 0, 64)}
}

// Add queues attaching (or replacing) c on id.
func (b *CommandBuffer) Add(id EntityID, c Component) {
	b.cmds = append(b.cmds, command{op: opAdd, id: id, comp: c})
}

// Remove queues detaching component type t from id.
func (b *CommandBuffer) Remove(id EntityID, t ComponentType) {
	b.cmds = append(b.cmds, command{op: opRemove, id: id, ctype: t})
}

// Destroy queues destruction of id.
func (b *CommandBuffer) Destroy(id EntityID) {
	b.cmds = append(b.cmds, command{op: opDestroy, id: id})
}

// Spawn queues creation of a new entity with the given components.
func (b *CommandBuffer) Spawn(cs ...Component) {
	b.cmds = append(b.cmds, command{op: opSpawn, spawn: cs})
}

// Len returns the number of pending commands.
func (b *CommandBuffer) Len() int { return len(b.cmds) }

// Reset drops every pending command.
func (b *CommandBuffer) Reset() {
	clear(b.cmds)
	b.cmds = b.cmds[:0]
}

// Flush applies pending commands to w in recorded order, then empties the
// buffer. Commands addressing destroyed entities are no-ops.
func (b *CommandBuffer) Flush(w *World) {
	for _, c := range b.cmds {
		switch c.op {
		case opAdd:
			w.Add(c.id, c.comp)
		case opRemove:
			if w.Alive(c.id) {
				w.Remove(c.id, c.ctype)
			}
		case opDestroy:
			w.DestroyEntity(c.id)
		case opSpawn:
			w.Spawn(c.spawn...)
		}
	}
	b.Reset()
}
