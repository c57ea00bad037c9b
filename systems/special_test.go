package systems

import (
	"errors"
	"testing"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// loadScripts installs the scripts of r and removes them after the test.
func loadScripts(t *testing.T, scripts map[string]string) error {
	t.Helper()
	r := content.NewRegistry()
	for name, src := range scripts {
		r.RegisterScript(name, src)
	}
	t.Cleanup(func() {
		if err := LoadScriptHandlers(content.NewRegistry()); err != nil {
			t.Errorf("clearing scripts: %v", err)
		}
	})
	return LoadScriptHandlers(r)
}

func TestRunSpecial_ScriptSetsFlagAndShowsText(t *testing.T) {
	err := loadScripts(t, map[string]string{
		"sign": `
if !__engine.has_flag("crack_open") {
	__engine.set_flag("crack_open")
	__engine.show_text("cracked")
}`,
	})
	if err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, testLoader(t))
	RunSpecial(h.e, "sign", nil)

	if !getOrCreateGameState(h.e).Progress.Flags.Has(components.FlagCrackOpen) {
		t.Error("script did not set crack_open")
	}
	if got := h.panelText(); got != "cracked" {
		t.Errorf("panel text = %q", got)
	}
	if in := h.interaction(); in.State != cfg.InteractionText || in.MovementEnabled {
		t.Errorf("interaction = %+v", *in)
	}
}

func TestRunSpecial_ShowTextResolvesRegistryIDs(t *testing.T) {
	if err := loadScripts(t, map[string]string{"sign": `__engine.show_text("sign")`}); err != nil {
		t.Fatal(err)
	}
	h := newHarness(t, testLoader(t))
	h.registry.RegisterText("sign", "Ucko village.")

	RunSpecial(h.e, "sign", nil)
	if got := h.panelText(); got != "Ucko village." {
		t.Errorf("panel text = %q", got)
	}
}

func TestRunSpecial_ReturnsControl(t *testing.T) {
	err := loadScripts(t, map[string]string{
		"noop":    `x := 1`,
		"failing": `__engine.set_flag("no_such_flag")`,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"noop", "failing", "missing"} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, testLoader(t))
			h.interaction().MovementEnabled = false
			RunSpecial(h.e, name, nil)
			if in := h.interaction(); in.State != cfg.InteractionNone || !in.MovementEnabled {
				t.Errorf("interaction = %+v", *in)
			}
		})
	}
}

func TestRunSpecial_CrackingKeepsMovementLocked(t *testing.T) {
	h := newHarness(t, testLoader(t))
	RunSpecial(h.e, "cracking", nil)
	if getOrCreateGameState(h.e).State != cfg.GameStateCracking {
		t.Fatal("cracking did not start")
	}
	if h.interaction().MovementEnabled {
		t.Error("movement enabled during the minigame")
	}
}

func TestLoadScriptHandlers_CompileErrorKeepsHandlers(t *testing.T) {
	if err := loadScripts(t, map[string]string{"good": `x := 1`}); err != nil {
		t.Fatal(err)
	}

	r := content.NewRegistry()
	r.RegisterScript("other", `x := 2`)
	r.RegisterScript("broken", `if {`)
	if err := LoadScriptHandlers(r); err == nil {
		t.Fatal("LoadScriptHandlers accepted a broken script")
	}

	if _, ok := SpecialHandlers["good"]; !ok {
		t.Error("previous script dropped after a failed reload")
	}
	if _, ok := SpecialHandlers["other"]; ok {
		t.Error("failed reload installed a partial set")
	}
}

func TestLoadScriptHandlers_BuiltinsCannotBeShadowed(t *testing.T) {
	if err := loadScripts(t, map[string]string{"cracking": `__engine.show_text("nope")`}); err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, testLoader(t))
	RunSpecial(h.e, "cracking", nil)
	if getPanel(h.e) != nil {
		t.Error("script ran instead of the built-in")
	}
	if getOrCreateGameState(h.e).State != cfg.GameStateCracking {
		t.Error("built-in did not run")
	}
}

func TestLoadScriptHandlers_ReplacesPreviousScripts(t *testing.T) {
	if err := loadScripts(t, map[string]string{"old": `x := 1`}); err != nil {
		t.Fatal(err)
	}
	r := content.NewRegistry()
	r.RegisterScript("new", `x := 1`)
	if err := LoadScriptHandlers(r); err != nil {
		t.Fatal(err)
	}

	names := HandlerNames()
	want := []string{"cracking", "new"}
	if len(names) != len(want) {
		t.Fatalf("HandlerNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("HandlerNames() = %v, want %v", names, want)
		}
	}
}

func TestSpecialHandler_CrackingWithoutDirector(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	if err := SpecialHandlers["cracking"](e, nil); !errors.Is(err, ErrNoDirector) {
		t.Errorf("cracking without director = %v, want ErrNoDirector", err)
	}
}

func TestEmbeddedScriptsCompile(t *testing.T) {
	r := content.MustLoadRegistry()
	for name, src := range r.Scripts() {
		if _, err := compileScript(src); err != nil {
			t.Errorf("script %s: %v", name, err)
		}
	}
}

func TestCompileScript(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"engine is declared", "engine := __engine", false},
		{"stdlib import", `fmt := import("fmt")`, false},
		{"syntax error", "if {", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileScript(tt.src)
			if (err != nil) != tt.wantErr {
				t.Errorf("compileScript(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
		})
	}
}
