package factory

import (
	"github.com/automoto/monkebucko/archetypes"
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// CreateDirector spawns the cutscene director singleton.
func CreateDirector(ecs *ecs.ECS, registry *content.Registry, loader components.Loader) *donburi.Entry {
	director := archetypes.Director.Spawn(ecs)
	components.Director.Set(director, &components.DirectorData{
		Registry: registry,
		Loader:   loader,
		Instance: donburi.Null,
	})
	return director
}

// CreateCutscene compiles c and spawns its root and element entities. The
// root starts hidden; elements wait offscreen with paused animations until
// the timeline starts them.
func CreateCutscene(ecs *ecs.ECS, c *content.Cutscene, loader components.Loader) (*donburi.Entry, error) {
	timeline, err := content.Compile(c)
	if err != nil {
		return nil, err
	}

	root := archetypes.CutsceneRoot.SpawnOn(ecs, cfg.LayerOverlay)
	data := &components.CutsceneData{
		ID:       c.ID,
		Timeline: timeline,
		Player:   animations.NewPlayer(),
	}

	for i, el := range c.Elements {
		img := loader.Load(el.Path)
		data.Tracker.Push(img)

		anim := animations.NewAnimation(0, el.Frames-1, el.FPS).WithPaused()
		if el.Looping {
			anim.WithLooping()
		}

		entry := archetypes.Element.SpawnOn(ecs, cfg.LayerOverlay)
		components.Element.Set(entry, &components.ElementData{
			Root:  root.Entity(),
			Index: i,
		})
		components.Sprite.Set(entry, &components.SpriteData{
			Sheet:    img,
			TileSize: cfg.Cutscene.ElementTileSize,
			Size:     el.Size,
		})
		components.Animation.Set(entry, &components.AnimationData{Current: anim})
		components.Transform.Set(entry, &components.TransformData{
			Position: cfg.Cutscene.Offscreen,
			Scale:    dmath.Vec2{X: 1, Y: 1},
			Z:        cfg.ZSprites + float64(i)*cfg.Cutscene.ElementZStep,
		})
		components.Visibility.Set(entry, &components.VisibilityData{Visible: true})

		data.Elements = append(data.Elements, entry.Entity())
	}

	components.Cutscene.Set(root, data)
	components.Visibility.Set(root, &components.VisibilityData{Visible: false})
	return root, nil
}

// FindCutscene returns a spawned instance of id, if any.
func FindCutscene(w donburi.World, id content.CutsceneID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Cutscene.Each(w, func(entry *donburi.Entry) {
		if found == nil && components.Cutscene.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}

// DestroyCutscene removes a cutscene root and all of its elements.
func DestroyCutscene(w donburi.World, root donburi.Entity) {
	if !w.Valid(root) {
		return
	}
	entry := w.Entry(root)
	for _, el := range components.Cutscene.Get(entry).Elements {
		if w.Valid(el) {
			w.Remove(el)
		}
	}
	w.Remove(root)
}
