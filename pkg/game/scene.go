package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the experience (tiles, letter, proposal game).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// InputBlocker 是一个可选接口，场景切换淡入淡出期间被调用
//
// 实现此接口的场景在过渡期间会收到 SetInputEnabled(false)，
// 过渡结束后收到 SetInputEnabled(true)。
type InputBlocker interface {
	SetInputEnabled(enabled bool)
}
