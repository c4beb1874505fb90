package commands

// CommandDescriptor expone metadatos de cada comando para help y la API.
type CommandDescriptor struct {
	Name        string
	Aliases     []string
	Description string
	// Usage va sin prefijo; se antepone el del router al mostrarlo.
	Usage string
}

// BuiltinCommandCatalog describe los comandos que vienen incluidos en el bot.
func BuiltinCommandCatalog() []CommandDescriptor {
	return []CommandDescriptor{
		{
			Name:        "define",
			Description: "Defines a Magic: The Gathering keyword ability.",
			Usage:       "define <keyword>",
		},
		{
			Name:        "search",
			Description: "Searches for decks with the specified commander on EDHRec.",
			Usage:       "search <commander>",
		},
		{
			Name:        "rec",
			Aliases:     []string{"recs"},
			Description: "Gets top card recommendations with high synergy for a commander from EDHRec.",
			Usage:       "rec <commander>",
		},
		{
			Name:        "combos",
			Aliases:     []string{"combo"},
			Description: "Gets a random combo for a commander from EDHRec.",
			Usage:       "combos <commander>",
		},
		{
			Name:        "details",
			Aliases:     []string{"card"},
			Description: "Gets card details for a card from EDHRec.",
			Usage:       "details <card>",
		},
		{
			Name:        "rules",
			Aliases:     []string{"rulings"},
			Description: "Fetches rulings for a Magic: The Gathering card from Scryfall.",
			Usage:       "rules <card>",
		},
		{
			Name:        "help",
			Aliases:     []string{"commands"},
			Description: "Lists the available commands.",
			Usage:       "help",
		},
		{
			Name:        "ping",
			Description: "Replies with pong to check the bot is alive.",
			Usage:       "ping",
		},
	}
}

func descriptorFor(name string) CommandDescriptor {
	for _, item := range BuiltinCommandCatalog() {
		if item.Name == name {
			return item
		}
	}
	return CommandDescriptor{Name: name, Usage: name}
}

func catalogAliases(name string) []string {
	return append([]string(nil), descriptorFor(name).Aliases...)
}
