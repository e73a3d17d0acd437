package game

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests the world, the map and the status. Two ticks that
// leave them untouched yield the same value.
func (s *Simulation) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	word := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	word(uint64(s.status.Phase))
	word(uint64(s.status.Outcome.Kind))
	word(uint64(s.status.Outcome.Winner)<<32 | uint64(s.status.Outcome.Loser))

	m := s.env.Map
	word(uint64(m.Width)<<32 | uint64(m.Height))
	for _, t := range m.Tiles {
		_, _ = h.Write([]byte{byte(t.Kind)})
	}

	for _, id := range s.world.Entities() {
		word(uint64(id))
		for _, c := range s.world.Components(id) {
			fmt.Fprintf(h, "%d:%v;", c.Type(), c)
		}
	}
	return h.Sum64()
}
