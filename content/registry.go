package content

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownCutscene  = errors.New("unknown cutscene")
	ErrUnknownMonologue = errors.New("unknown monologue")
	ErrElementIndex     = errors.New("element index out of range")
)

// Registry maps ids to authored content. It is filled once at startup and
// only read afterwards.
type Registry struct {
	cutscenes  map[CutsceneID]*Cutscene
	monologues map[string]*Monologue
	texts      map[string]string
	scripts    map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		cutscenes:  make(map[CutsceneID]*Cutscene),
		monologues: make(map[string]*Monologue),
		texts:      make(map[string]string),
		scripts:    make(map[string]string),
	}
}

// Register adds a cutscene after checking that it compiles.
func (r *Registry) Register(c *Cutscene) error {
	if c.ID == CutsceneNone {
		return fmt.Errorf("content: register: %w: cutscene without id", ErrUnknownCutscene)
	}
	if _, ok := r.cutscenes[c.ID]; ok {
		return fmt.Errorf("content: register: duplicate cutscene %s", c.ID)
	}
	c.ApplyDefaults()
	if _, err := Compile(c); err != nil {
		return err
	}
	r.cutscenes[c.ID] = c
	return nil
}

func (r *Registry) Lookup(id CutsceneID) (*Cutscene, error) {
	c, ok := r.cutscenes[id]
	if !ok {
		return nil, fmt.Errorf("content: %w: %s", ErrUnknownCutscene, id)
	}
	return c, nil
}

func (r *Registry) MustLookup(id CutsceneID) *Cutscene {
	c, err := r.Lookup(id)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// IDs returns every registered cutscene id in ascending order.
func (r *Registry) IDs() []CutsceneID {
	ids := make([]CutsceneID, 0, len(r.cutscenes))
	for id := range r.cutscenes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Registry) RegisterMonologue(id string, m *Monologue) error {
	if len(m.Lines) == 0 {
		return fmt.Errorf("content: monologue %s has no lines", id)
	}
	if m.Loop < 0 || m.Loop >= len(m.Lines) {
		return fmt.Errorf("content: monologue %s loop index %d outside %d lines", id, m.Loop, len(m.Lines))
	}
	r.monologues[id] = m
	return nil
}

func (r *Registry) Monologue(id string) (*Monologue, error) {
	m, ok := r.monologues[id]
	if !ok {
		return nil, fmt.Errorf("content: %w: %s", ErrUnknownMonologue, id)
	}
	return m, nil
}

func (r *Registry) RegisterText(id, text string) {
	r.texts[id] = text
}

// Text returns a one-shot interaction text.
func (r *Registry) Text(id string) (string, bool) {
	t, ok := r.texts[id]
	return t, ok
}

// RegisterScript stores the source of a scripted special handler.
func (r *Registry) RegisterScript(name, src string) {
	r.scripts[name] = src
}

// Scripts returns the registered handler sources by name.
func (r *Registry) Scripts() map[string]string {
	return r.scripts
}
