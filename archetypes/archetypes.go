package archetypes

import (
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Weapon,
		components.BulletBank,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Weapon,
		components.BulletBank,
		components.Movement,
		components.Sprite,
	)
	Bullet = newArchetype(
		components.Bullet,
		components.Object,
		components.Sprite,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
