package commands

import "github.com/disgoorg/disgo/discord"

var Commands []discord.ApplicationCommandCreate

func init() {
	Commands = []discord.ApplicationCommandCreate{
		Start,
		Help,
		DailyClaim,
		Credits,
		Version,
	}
}
