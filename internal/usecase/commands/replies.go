package commands

import (
	"fmt"
	"strings"

	"mtgBot/internal/domain"
)

func definitionReply(entry domain.KeywordEntry) string {
	return fmt.Sprintf("**%s**: %s", entry.Term, entry.Definition)
}

func unknownKeywordReply(query string) string {
	return fmt.Sprintf("I don't know the keyword '%s'.", strings.ToLower(strings.TrimSpace(query)))
}

func usageReply(prefix, usage string) string {
	return fmt.Sprintf("Usage: %s%s", prefix, usage)
}

func commanderReplies(result domain.CommanderQueryResult) []string {
	out := []string{fmt.Sprintf("Moxfield decks for %s: %s", result.Commander, result.DeckListURI)}
	if result.SimilarDeckListURI != "" {
		out = append(out, fmt.Sprintf("Random similar commander decks on Moxfield: %s", result.SimilarDeckListURI))
	}
	return out
}

func recommendationsReply(list domain.RecommendationList) string {
	if len(list.Names) == 0 {
		return fmt.Sprintf("No recommendations with high synergy found for %s on EDHRec.", list.Commander)
	}
	return fmt.Sprintf("Top recommendations with high synergy for %s on EDHRec:\n- %s",
		list.Commander, strings.Join(list.Names, "\n- "))
}

func comboReply(result domain.ComboResult) string {
	if result.Empty() {
		return fmt.Sprintf("No combos found for '%s' on EDHRec.", result.Commander)
	}
	return fmt.Sprintf("**%s (%d total)**\nRandom combo: %s\n%s\nSee all combos for %s on EDHRec: %s",
		result.Header, result.Total, result.ComboName, result.ComboURL, result.Commander, result.AllCombosURL)
}

func cardDetailsReplies(details domain.CardDetails, query string) []string {
	return []string{
		fmt.Sprintf("Card details for %s on EDHRec: %s", query, details.Link),
		fmt.Sprintf("```\n%s\n```", details.OracleText),
	}
}

func rulingsReply(set domain.CardRulingSet) string {
	if len(set.Rulings) == 0 {
		return fmt.Sprintf("No rulings found for %s.", set.CardName)
	}
	lines := make([]string, 0, len(set.Rulings))
	for _, r := range set.Rulings {
		lines = append(lines, fmt.Sprintf("**%s**: %s", r.PublishedAt, r.Comment))
	}
	return fmt.Sprintf("Rulings for %s:\n%s", set.CardName, strings.Join(lines, "\n"))
}

// helpReply lista los comandos sin el prefijo delante: en Kick y Twitch cada
// línea sale como un mensaje de chat y no debe leerse como un comando nuevo.
func helpReply(prefix string, catalog []CommandDescriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Available commands (prefix %s):", prefix)
	for _, item := range catalog {
		fmt.Fprintf(&b, "\n%s - %s", item.Usage, item.Description)
	}
	return b.String()
}

func welcomeReply(prefix string) string {
	return fmt.Sprintf("Hi! I look up Magic: The Gathering keywords, decks, combos and rulings. Try %shelp.", prefix)
}
