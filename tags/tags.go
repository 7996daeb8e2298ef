package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Trigger = donburi.NewTag().SetName("Trigger")
	Level   = donburi.NewTag().SetName("Level")
)

