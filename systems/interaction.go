package systems

import (
	"log"
	"sort"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems/factory"
	"github.com/automoto/monkebucko/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterInteractionHandlers closes text and monologue panels on advance.
// Dialogue advances are handled by the cutscene director.
func RegisterInteractionHandlers(w donburi.World) {
	messages.InteractionAdvance.Subscribe(w, func(w donburi.World, _ messages.InteractionAdvanceEvent) {
		entry, ok := components.Interaction.First(w)
		if !ok {
			return
		}
		in := components.Interaction.Get(entry)
		switch in.State {
		case cfg.InteractionText, cfg.InteractionMonologue:
			factory.DestroyInteractionPanel(w)
			in.State = cfg.InteractionNone
			in.MovementEnabled = true
		}
	})
}

// UpdateInteractionInput turns the advance, cancel, focus and interact
// actions into interaction requests.
func UpdateInteractionInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	in := getOrCreateInteraction(ecs)

	if panel := getPanel(ecs); panel != nil && GetAction(input, cfg.ActionAdvance).JustPressed {
		if panel.Busy() {
			panel.Animator.Skip()
		} else {
			messages.InteractionAdvance.Publish(ecs.World, messages.InteractionAdvanceEvent{})
		}
	}

	if in.State == cfg.InteractionDialogue && GetAction(input, cfg.ActionCancel).JustPressed {
		messages.CutsceneCancel.Publish(ecs.World, messages.CutsceneCancelEvent{})
	}

	if in.State != cfg.InteractionNone || !in.MovementEnabled {
		return
	}
	if getOrCreateGameState(ecs).State == cfg.GameStateCracking {
		return
	}

	targets := Interactables(ecs.World)
	if len(targets) == 0 {
		return
	}
	if GetAction(input, cfg.ActionFocusPrev).JustPressed {
		in.Focus--
	}
	if GetAction(input, cfg.ActionFocusNext).JustPressed {
		in.Focus++
	}
	in.Focus = (in.Focus%len(targets) + len(targets)) % len(targets)

	if GetAction(input, cfg.ActionInteract).JustPressed {
		Interact(ecs, targets[in.Focus])
	}
}

// Interactables returns the interactable entities ordered left to right.
func Interactables(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Interactable.Each(w, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return components.Transform.Get(out[i]).Position.X < components.Transform.Get(out[j]).Position.X
	})
	return out
}

// Interact plays the reaction of target. Movement is disabled for as long
// as the reaction owns the panel.
func Interact(ecs *ecs.ECS, target *donburi.Entry) {
	in := getOrCreateInteraction(ecs)
	data := components.EntityInteraction.Get(target)
	in.MovementEnabled = false

	switch data.Kind {
	case components.InteractText:
		text, ok := registryOf(ecs).Text(data.Text)
		if !ok {
			log.Printf("[interaction] no text %q", data.Text)
			in.MovementEnabled = true
			return
		}
		ShowText(ecs, text)
	case components.InteractMonologue:
		ShowMonologue(ecs, data.Monologue)
	case components.InteractDialogue:
		if data.Cutscene == content.CutsceneNone {
			in.MovementEnabled = true
			return
		}
		if err := BeginCutscene(ecs, data.Cutscene); err != nil {
			log.Printf("[interaction] %s: %v", data.Label, err)
		}
	case components.InteractSpecial:
		RunSpecial(ecs, data.Special, target)
	}
}

// ShowText opens the panel with a one-shot text.
func ShowText(ecs *ecs.ECS, text string) {
	in := getOrCreateInteraction(ecs)
	in.State = cfg.InteractionText
	in.MovementEnabled = false
	factory.CreateInteractionPanel(ecs, text, in.RevealSpeed(cfg.Cutscene.DefaultTextSpeed), cfg.Panel.TextOpacity)
}

// ShowMonologue opens the panel with the next line of monologue id.
func ShowMonologue(ecs *ecs.ECS, id string) {
	in := getOrCreateInteraction(ecs)
	if in.Monologues == nil {
		in.Monologues = content.NewMonologueServer(registryOf(ecs))
	}
	line, err := in.Monologues.NextLine(id)
	if err != nil {
		log.Printf("[interaction] %v", err)
		in.MovementEnabled = in.State == cfg.InteractionNone
		return
	}
	in.State = cfg.InteractionMonologue
	in.MovementEnabled = false
	factory.CreateInteractionPanel(ecs, line, in.RevealSpeed(cfg.Cutscene.DefaultTextSpeed), cfg.Panel.TextOpacity)
}

func registryOf(ecs *ecs.ECS) *content.Registry {
	if d := getDirector(ecs); d != nil && d.Registry != nil {
		return d.Registry
	}
	return content.NewRegistry()
}
