package systems

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/monkebucko/assets"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// memStore is an in-memory ItemStore.
type memStore struct {
	items map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStore) SaveItem(key string, data []byte) error {
	if data == nil {
		delete(m.items, key)
		return nil
	}
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2*cfg.Cutscene.ElementTileSize, cfg.Cutscene.ElementTileSize))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// testLoader serves a small png for every path given.
func testLoader(t *testing.T, paths ...string) *assets.Loader {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, p := range paths {
		fsys[p] = &fstest.MapFile{Data: pngBytes(t)}
	}
	return assets.NewLoader(fsys)
}

// blockingFS never finishes opening a file until release is closed.
type blockingFS struct {
	release chan struct{}
}

func (f blockingFS) Open(name string) (fs.File, error) {
	<-f.release
	return nil, fs.ErrNotExist
}

// gatedFS serves from FS once release is closed.
type gatedFS struct {
	fs.FS
	release chan struct{}
}

func (f gatedFS) Open(name string) (fs.File, error) {
	<-f.release
	return f.FS.Open(name)
}

type harness struct {
	t        *testing.T
	e        *ecs.ECS
	registry *content.Registry
	loader   *assets.Loader
	store    *memStore
	pressed  [cfg.ActionCount]bool

	started []messages.CutsceneStartedEvent
	ended   []messages.CutsceneEndedEvent
}

func newHarness(t *testing.T, loader *assets.Loader, cutscenes ...*content.Cutscene) *harness {
	t.Helper()

	store := newMemStore()
	SetItemStore(store)
	t.Cleanup(func() { SetItemStore(nil) })

	registry := content.NewRegistry()
	for _, c := range cutscenes {
		if err := registry.Register(c); err != nil {
			t.Fatalf("Register(%s) = %v", c.ID, err)
		}
	}

	h := &harness{
		t:        t,
		e:        ecs.NewECS(donburi.NewWorld()),
		registry: registry,
		loader:   loader,
		store:    store,
	}
	RegisterHandlers(h.e.World)
	messages.CutsceneStarted.Subscribe(h.e.World, func(_ donburi.World, ev messages.CutsceneStartedEvent) {
		h.started = append(h.started, ev)
	})
	messages.CutsceneEnded.Subscribe(h.e.World, func(_ donburi.World, ev messages.CutsceneEndedEvent) {
		h.ended = append(h.ended, ev)
	})

	factory.CreateDirector(h.e, registry, loader)
	factory.CreateCinematicBars(h.e)
	return h
}

// tick runs one frame in game scene order, with h.pressed as the input.
func (h *harness) tick() {
	applyInput(getOrCreateInput(h.e), h.pressed, components.InputKeyboard)
	UpdateInteractionInput(h.e)
	UpdateAnimations(h.e)
	UpdateTimelines(h.e)
	UpdateBars(h.e)
	UpdateTyping(h.e)
	messages.Drain(h.e.World)
	UpdateCutscene(h.e)
	UpdateCracking(h.e)
	UpdateSessionTime(h.e)
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

// tickUntil ticks until cond holds, failing the test after max ticks.
func (h *harness) tickUntil(what string, max int, cond func() bool) int {
	h.t.Helper()
	for i := 1; i <= max; i++ {
		h.tick()
		if cond() {
			return i
		}
	}
	h.t.Fatalf("%s not reached within %d ticks", what, max)
	return 0
}

func (h *harness) press(ids ...cfg.ActionID) {
	for _, id := range ids {
		h.pressed[id] = true
	}
}

func (h *harness) release(ids ...cfg.ActionID) {
	for _, id := range ids {
		h.pressed[id] = false
	}
}

// tap presses ids for one tick, then releases them for one tick.
func (h *harness) tap(ids ...cfg.ActionID) {
	h.press(ids...)
	h.tick()
	h.release(ids...)
	h.tick()
}

func (h *harness) director() *components.DirectorData {
	return getDirector(h.e)
}

func (h *harness) interaction() *components.InteractionData {
	return getOrCreateInteraction(h.e)
}

func (h *harness) advance() {
	messages.InteractionAdvance.Publish(h.e.World, messages.InteractionAdvanceEvent{})
}

func (h *harness) cancel() {
	messages.CutsceneCancel.Publish(h.e.World, messages.CutsceneCancelEvent{})
}

// play begins id and ticks until it reaches the playing phase.
func (h *harness) play(id content.CutsceneID) *components.CutsceneData {
	h.t.Helper()
	if err := BeginCutscene(h.e, id); err != nil {
		h.t.Fatalf("BeginCutscene(%s) = %v", id, err)
	}
	_ = h.loader.Wait()
	h.tickUntil("playing", 400, func() bool { return h.director().Phase == cfg.PhasePlaying })
	return h.instance()
}

func (h *harness) instance() *components.CutsceneData {
	h.t.Helper()
	d := h.director()
	if !h.e.World.Valid(d.Instance) {
		h.t.Fatalf("director has no instance")
	}
	return components.Cutscene.Get(h.e.World.Entry(d.Instance))
}

func (h *harness) panelText() string {
	panel := getPanel(h.e)
	if panel == nil || panel.Animator == nil {
		return ""
	}
	return panel.Animator.Text()
}

func countCutscenes(w donburi.World) int {
	n := 0
	components.Cutscene.Each(w, func(*donburi.Entry) { n++ })
	return n
}
