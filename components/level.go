package components

import (
	"github.com/automoto/doomerang-fps/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *leveldata.Arena
}

var Level = donburi.NewComponentType[LevelData]()
