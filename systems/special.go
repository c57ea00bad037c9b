package systems

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownHandler = errors.New("unknown special handler")

// SpecialHandler is a named reaction of an interactable.
type SpecialHandler func(ecs *ecs.ECS, target *donburi.Entry) error

// builtinHandlers are always available; scripts cannot replace them.
var builtinHandlers = map[string]SpecialHandler{
	"cracking": func(ecs *ecs.ECS, _ *donburi.Entry) error {
		return BeginCracking(ecs)
	},
}

// SpecialHandlers maps handler names to reactions: the built-ins plus one
// handler per loaded script.
var SpecialHandlers = map[string]SpecialHandler{}

func init() {
	for name, h := range builtinHandlers {
		SpecialHandlers[name] = h
	}
}

// HandlerNames lists the registered handlers in order.
func HandlerNames() []string {
	names := make([]string, 0, len(SpecialHandlers))
	for name := range SpecialHandlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunSpecial runs the handler called name. Control returns to the player
// when the handler fails or does not open an interaction.
func RunSpecial(ecs *ecs.ECS, name string, target *donburi.Entry) {
	in := getOrCreateInteraction(ecs)

	h, ok := SpecialHandlers[name]
	var err error
	if !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownHandler, name)
	} else {
		err = h(ecs, target)
	}
	if err != nil {
		log.Printf("[interaction] special %s: %v", name, err)
	}

	if in.State == cfg.InteractionNone && getOrCreateGameState(ecs).State != cfg.GameStateCracking {
		in.MovementEnabled = true
	}
}

// LoadScriptHandlers compiles every script of r into a special handler
// named after it. Scripts from a previous registry are replaced.
func LoadScriptHandlers(r *content.Registry) error {
	compiled := make(map[string]*tengo.Compiled)
	for name, src := range r.Scripts() {
		c, err := compileScript(src)
		if err != nil {
			return fmt.Errorf("script %s: %w", name, err)
		}
		compiled[name] = c
	}

	for name := range SpecialHandlers {
		if _, builtin := builtinHandlers[name]; !builtin {
			delete(SpecialHandlers, name)
		}
	}
	for name, c := range compiled {
		if _, builtin := builtinHandlers[name]; builtin {
			log.Printf("Warning: script %s shadows a built-in handler and is ignored", name)
			continue
		}
		SpecialHandlers[name] = scriptHandler(c)
	}
	return nil
}

func compileScript(src string) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(src))
	if err := script.Add("__engine", map[string]any{}); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func scriptHandler(compiled *tengo.Compiled) SpecialHandler {
	return func(ecs *ecs.ECS, target *donburi.Entry) error {
		run := compiled.Clone()
		if err := run.Set("__engine", buildScriptEngine(ecs)); err != nil {
			return err
		}
		return run.Run()
	}
}

// buildScriptEngine exposes the interaction surface to scripts.
func buildScriptEngine(ecs *ecs.ECS) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["begin_cutscene"] = &tengo.UserFunction{Name: "begin_cutscene", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		id, err := content.ParseCutsceneID(objectAsString(args[0]))
		if err != nil {
			return nil, err
		}
		if err := BeginCutscene(ecs, id); err != nil {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["show_text"] = &tengo.UserFunction{Name: "show_text", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		text := objectAsString(args[0])
		if t, ok := registryOf(ecs).Text(text); ok {
			text = t
		}
		ShowText(ecs, text)
		return tengo.TrueValue, nil
	}}

	values["monologue"] = &tengo.UserFunction{Name: "monologue", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		ShowMonologue(ecs, objectAsString(args[0]))
		return tengo.TrueValue, nil
	}}

	values["has_flag"] = &tengo.UserFunction{Name: "has_flag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		flag, ok := components.ParseFlag(objectAsString(args[0]))
		if !ok {
			return nil, fmt.Errorf("unknown flag %q", objectAsString(args[0]))
		}
		if getOrCreateGameState(ecs).Progress.Flags.Has(flag) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["set_flag"] = &tengo.UserFunction{Name: "set_flag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		flag, ok := components.ParseFlag(objectAsString(args[0]))
		if !ok {
			return nil, fmt.Errorf("unknown flag %q", objectAsString(args[0]))
		}
		getOrCreateGameState(ecs).Progress.Flags.Insert(flag)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if s, ok := obj.(*tengo.String); ok {
		return strings.TrimSpace(s.Value)
	}
	if obj == nil {
		return ""
	}
	return strings.Trim(obj.String(), `"`)
}
