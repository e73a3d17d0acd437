package component

import "pascman/internal/ecs"

const CID ecs.ComponentType = 16

// ID is the stable protocol-level identity of an entity.
type ID uint32

func (ID) Type() ecs.ComponentType { return CID }
