package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// Data is the embedded content tree.
func Data() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded content missing: %v", err))
	}
	return sub
}

const (
	cutsceneGlob   = "cutscenes/*.yaml"
	scriptGlob     = "scripts/*.tengo"
	interactionDoc = "interactions.yaml"
)

type interactionFile struct {
	Monologues map[string]*Monologue `yaml:"monologues"`
	Texts      map[string]string     `yaml:"texts"`
}

// LoadSpec decodes one YAML document from fsys.
func LoadSpec[T any](fsys fs.FS, name string) (T, error) {
	var zero T
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return zero, fmt.Errorf("content: load %s: %w", name, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("content: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// LoadRegistry reads every cutscene under cutscenes/, every special
// handler script under scripts/ and the optional interactions.yaml from fsys. Every cutscene is compiled once so authoring
// mistakes surface here.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	names, err := fs.Glob(fsys, cutsceneGlob)
	if err != nil {
		return nil, fmt.Errorf("content: glob: %w", err)
	}
	sort.Strings(names)

	r := NewRegistry()
	for _, name := range names {
		c, err := LoadSpec[Cutscene](fsys, name)
		if err != nil {
			return nil, err
		}
		if err := r.Register(&c); err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
	}

	scripts, err := fs.Glob(fsys, scriptGlob)
	if err != nil {
		return nil, fmt.Errorf("content: glob: %w", err)
	}
	for _, name := range scripts {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: load %s: %w", name, err)
		}
		r.RegisterScript(strings.TrimSuffix(path.Base(name), path.Ext(name)), string(src))
	}

	inter, err := LoadSpec[interactionFile](fsys, interactionDoc)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return r, nil
	case err != nil:
		return nil, err
	}
	for id, m := range inter.Monologues {
		if err := r.RegisterMonologue(id, m); err != nil {
			return nil, err
		}
	}
	for id, text := range inter.Texts {
		r.RegisterText(id, text)
	}
	return r, nil
}

// MustLoadRegistry loads the embedded content.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry(Data())
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return r
}
