package scenes

import (
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	layerBackground ecs.LayerID = iota
	layerWorld
	layerHUD
	layerDebug
)
