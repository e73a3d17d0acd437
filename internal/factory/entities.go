package factory

import (
	"time"

	"pascman/internal/component"
	"pascman/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Sprite sets, indexed by component.Direction (Down, Right, Left, Up).
var HeroGlyphs = [4]rune{'ᗢ', 'ᗧ', 'ᗤ', 'ᗣ'}

// VillainGlyphs holds one set per villain variant.
var VillainGlyphs = [...][4]rune{
	{'ᗝ', 'ᗝ', 'ᗝ', 'ᗝ'},
	{'ᙁ', 'ᙁ', 'ᙁ', 'ᙁ'},
	{'ᙀ', 'ᙀ', 'ᙀ', 'ᙀ'},
	{'ᘮ', 'ᘮ', 'ᘮ', 'ᘮ'},
	{'ᘯ', 'ᘯ', 'ᘯ', 'ᘯ'},
}

const (
	FoodGlyph      = '·'
	SuperfoodGlyph = '●'
)

// Character colours. Hunted villains turn HuntedColor for the powerup window.
var (
	HeroColor    = tcell.ColorYellow
	VillainColor = tcell.ColorRed
	HuntedColor  = tcell.ColorBlue
	FoodColor    = tcell.ColorWhite
)

// VillainBrain configures how autonomous villains act.
type VillainBrain struct {
	Kind     component.BrainKind
	Interval time.Duration
}

// Hero returns the component set of the food-collecting character. The hero
// is a victim and is steered by the local keyboard.
func Hero(id uint32, x, y int) []ecs.Component {
	return []ecs.Component{
		component.ID(id),
		component.Hero{},
		component.Victim{},
		component.Controlled{},
		component.Position{X: x, Y: y},
		component.Down,
		component.Renderable{Glyphs: HeroGlyphs, Color: HeroColor, Layer: component.LayerCharacter},
	}
}

// Villain returns the component set of a pursuing character. variant picks
// the sprite set. A zero brain interval leaves the villain without a Brain,
// so it only moves on protocol MOVEMENT messages.
func Villain(id uint32, x, y, variant int, brain VillainBrain) []ecs.Component {
	glyphs := VillainGlyphs[abs(variant)%len(VillainGlyphs)]
	cs := []ecs.Component{
		component.ID(id),
		component.Villain{},
		component.Hunter{},
		component.Position{X: x, Y: y},
		component.Home{X: x, Y: y},
		component.Down,
		component.Renderable{Glyphs: glyphs, Color: VillainColor, Layer: component.LayerCharacter},
	}
	if brain.Interval > 0 {
		cs = append(cs, component.Brain{Kind: brain.Kind, Interval: brain.Interval})
	}
	return cs
}

// Food returns the component set of a regular food item.
func Food(id uint32, x, y int) []ecs.Component {
	return []ecs.Component{
		component.ID(id),
		component.Food{Glyph: FoodGlyph},
		component.Position{X: x, Y: y},
		component.Renderable{Glyphs: fill(FoodGlyph), Color: FoodColor, Layer: component.LayerFood},
	}
}

// Superfood returns the component set of a powerup. It is food as well.
func Superfood(id uint32, x, y int) []ecs.Component {
	return []ecs.Component{
		component.ID(id),
		component.Food{Glyph: SuperfoodGlyph},
		component.Superfood{},
		component.Position{X: x, Y: y},
		component.Renderable{Glyphs: fill(SuperfoodGlyph), Color: FoodColor, Layer: component.LayerFood},
	}
}

// NewHero spawns a hero directly into w.
func NewHero(w *ecs.World, id uint32, x, y int) ecs.EntityID {
	return w.Spawn(Hero(id, x, y)...)
}

// NewVillain spawns a villain directly into w.
func NewVillain(w *ecs.World, id uint32, x, y, variant int, brain VillainBrain) ecs.EntityID {
	return w.Spawn(Villain(id, x, y, variant, brain)...)
}

// NewFood spawns a food item directly into w.
func NewFood(w *ecs.World, id uint32, x, y int) ecs.EntityID {
	return w.Spawn(Food(id, x, y)...)
}

// NewSuperfood spawns a powerup directly into w.
func NewSuperfood(w *ecs.World, id uint32, x, y int) ecs.EntityID {
	return w.Spawn(Superfood(id, x, y)...)
}

func fill(r rune) [4]rune { return [4]rune{r, r, r, r} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
