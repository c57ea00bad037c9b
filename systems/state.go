package systems

import (
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateInteraction returns the interaction singleton. A fresh one has
// movement enabled and no owner.
func getOrCreateInteraction(ecs *ecs.ECS) *components.InteractionData {
	entry, ok := components.Interaction.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Interaction))
		components.Interaction.Set(entry, &components.InteractionData{MovementEnabled: true})
	}
	return components.Interaction.Get(entry)
}

// getOrCreateGameState returns the session singleton, starting a fresh
// progress when none exists.
func getOrCreateGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.GameState))
		components.GameState.Set(entry, &components.GameStateData{Progress: components.NewProgress()})
	}
	return components.GameState.Get(entry)
}

// getDirector returns the director singleton, nil before CreateDirector ran.
func getDirector(ecs *ecs.ECS) *components.DirectorData {
	entry, ok := components.Director.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Director.Get(entry)
}

func getPanel(ecs *ecs.ECS) *components.InteractionPanelData {
	entry, ok := components.InteractionPanel.First(ecs.World)
	if !ok {
		return nil
	}
	return components.InteractionPanel.Get(entry)
}

// returnFocus gives control back to the player.
func returnFocus(ecs *ecs.ECS) {
	in := getOrCreateInteraction(ecs)
	in.State = cfg.InteractionNone
	in.MovementEnabled = true
}
