// Package game 场景接口和场景管理
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the demo (e.g. the avatar gallery).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景持有 GPU 纹理或动画时实现
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 被 SwitchTo 切换掉
//   - 程序退出（SceneManager.Close）
type Closer interface {
	Close()
}
