package systems

import (
	cfg "github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTyping reveals the interaction panel text.
func UpdateTyping(ecs *ecs.ECS) {
	if panel := getPanel(ecs); panel != nil && panel.Animator != nil {
		panel.Animator.Update(cfg.C.TickSeconds())
	}
}
