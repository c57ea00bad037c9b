// Package messages holds the one-shot events exchanged between systems.
// Events published during a tick are delivered when Drain runs; an event with
// no subscriber at that point is dropped.
package messages

import (
	"github.com/automoto/monkebucko/content"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type CutsceneStartedEvent struct {
	ID content.CutsceneID
}

type CutsceneEndedEvent struct {
	ID      content.CutsceneID
	Aborted bool
}

// AnimationFinishedEvent is sent once each time a frame animation completes.
type AnimationFinishedEvent struct {
	Entity donburi.Entity
}

// AnimationLoopedEvent is sent each time a looping animation wraps.
type AnimationLoopedEvent struct {
	Entity donburi.Entity
}

type BarsInEvent struct{}

type BarsOutEvent struct{}

// InteractionAdvanceEvent is the player asking for the next line.
type InteractionAdvanceEvent struct{}

type CutsceneCancelEvent struct{}

var (
	CutsceneStarted    = events.NewEventType[CutsceneStartedEvent]()
	CutsceneEnded      = events.NewEventType[CutsceneEndedEvent]()
	AnimationFinished  = events.NewEventType[AnimationFinishedEvent]()
	AnimationLooped    = events.NewEventType[AnimationLoopedEvent]()
	BarsIn             = events.NewEventType[BarsInEvent]()
	BarsOut            = events.NewEventType[BarsOutEvent]()
	InteractionAdvance = events.NewEventType[InteractionAdvanceEvent]()
	CutsceneCancel     = events.NewEventType[CutsceneCancelEvent]()
)

// Drain delivers every queued event to its subscribers.
func Drain(w donburi.World) {
	events.ProcessAllEvents(w)
}
