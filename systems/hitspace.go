package systems

import (
	"math"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Objects are grown by this much so cell lookups never miss a sub-unit overlap
const hitPadding = 1.0

type collider struct {
	entry  *donburi.Entry
	x, y   float64
	radius float64
	tag    string
}

func getOrCreateHitSpace(e *ecs.ECS) *components.HitSpaceData {
	entry, ok := components.HitSpace.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HitSpace))
	}
	return components.HitSpace.Get(entry)
}

// buildHitSpace rebuilds the broad phase from every live player, enemy and
// projectile. The space covers only the bounding box of those entities.
func buildHitSpace(e *ecs.ECS) *components.HitSpaceData {
	hs := getOrCreateHitSpace(e)
	cmds := getOrCreateCommands(e)

	var colliders []collider
	collect := func(tag string, radius func(*donburi.Entry) float64) func(*donburi.Entry) {
		return func(entry *donburi.Entry) {
			if cmds.Marked(entry) {
				return
			}
			pos := components.Transform.Get(entry).Position
			colliders = append(colliders, collider{
				entry:  entry,
				x:      pos.X,
				y:      pos.Y,
				radius: radius(entry),
				tag:    tag,
			})
		}
	}
	tags.Player.Each(e.World, collect(tags.ResolvPlayer, func(entry *donburi.Entry) float64 {
		return components.Player.Get(entry).Radius
	}))
	tags.Enemy.Each(e.World, collect(tags.ResolvEnemy, func(entry *donburi.Entry) float64 {
		return components.Enemy.Get(entry).Radius
	}))
	tags.Projectile.Each(e.World, collect(tags.ResolvProjectile, func(entry *donburi.Entry) float64 {
		return components.Projectile.Get(entry).Radius
	}))

	hs.Objects = make(map[donburi.Entity]*resolv.Object, len(colliders))
	hs.Space = nil
	if len(colliders) == 0 {
		return hs
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range colliders {
		r := c.radius + hitPadding
		minX = math.Min(minX, c.x-r)
		minY = math.Min(minY, c.y-r)
		maxX = math.Max(maxX, c.x+r)
		maxY = math.Max(maxY, c.y+r)
	}

	cell := cfg.Collision.MinCellSize
	span := math.Max(maxX-minX, maxY-minY)
	if c := int(math.Ceil(span / float64(cfg.Collision.MaxCellsPerAxis))); c > cell {
		cell = c
	}

	// One spare cell on every side keeps all objects inside the grid
	cols := int((maxX-minX)/float64(cell)) + 3
	rows := int((maxY-minY)/float64(cell)) + 3
	originX := minX - float64(cell)
	originY := minY - float64(cell)

	space := resolv.NewSpace(cols*cell, rows*cell, cell, cell)
	for _, c := range colliders {
		r := c.radius + hitPadding
		obj := resolv.NewObject(c.x-r-originX, c.y-r-originY, 2*r, 2*r, c.tag)
		obj.Data = c.entry
		space.Add(obj)
		hs.Objects[c.entry.Entity()] = obj
	}
	hs.Space = space
	hs.OriginX = originX
	hs.OriginY = originY

	return hs
}

// nearby returns the live entities tagged tag that share a cell with entry
func nearby(hs *components.HitSpaceData, entry *donburi.Entry, tag string) []*donburi.Entry {
	if hs.Space == nil {
		return nil
	}
	obj, ok := hs.Objects[entry.Entity()]
	if !ok {
		return nil
	}

	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() {
			continue
		}
		out = append(out, other)
	}
	return out
}

// overlapping is the exact hit test: centers closer than the summed radii
func overlapping(a, b dmath.Vec2, radius float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < radius
}
