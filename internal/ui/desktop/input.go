package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/internal/session"
)

// Held movement keys repeat after repeatDelay ticks, every repeatRate ticks.
const (
	repeatDelay = 10
	repeatRate  = 3
)

type binding struct {
	keys   []ebiten.Key
	action session.Action
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: session.ActionLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: session.ActionRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: session.ActionSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: session.ActionRotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: session.ActionHardDrop},
	{keys: []ebiten.Key{ebiten.KeyP}, action: session.ActionPause},
	{keys: []ebiten.Key{ebiten.KeyR}, action: session.ActionRestart},
}

// fires reports whether a key held for ticks frames triggers its action on
// this frame.
func fires(ticks int, repeat bool) bool {
	if ticks == 1 {
		return true
	}
	return repeat && ticks > repeatDelay && (ticks-repeatDelay)%repeatRate == 0
}

// readActions returns the actions triggered by the keyboard this frame.
func readActions() []session.Action {
	var actions []session.Action
	for _, b := range bindings {
		for _, key := range b.keys {
			if fires(inpututil.KeyPressDuration(key), b.repeat) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
