package domain

// SynergyThreshold y MaxRecommendationsPerList definen qué cartas de una lista
// de EDHREC cuentan como recomendación.
const (
	SynergyThreshold          = 0.65
	MaxRecommendationsPerList = 5
)

type KeywordEntry struct {
	Term       string
	Definition string
}

type SimilarCommander struct {
	Name        string
	DeckListURI string
}

type CardView struct {
	Name    string
	Synergy float64
}

type CardList struct {
	Header string
	Cards  []CardView
}

// CommanderPage es la página de un comandante tal como la devuelve EDHREC.
type CommanderPage struct {
	DeckListURI string
	Similar     []SimilarCommander
	CardLists   []CardList
}

type CommanderQueryResult struct {
	Commander   string
	DeckListURI string
	// SimilarDeckListURI queda vacío cuando EDHREC no trae comandantes similares.
	SimilarDeckListURI string
}

type RecommendationList struct {
	Commander string
	Names     []string
}

type ComboGroup struct {
	Header string
	Href   string
}

type ComboPage struct {
	Header        string
	Combos        []ComboGroup
	AllCombosPath string
}

type ComboResult struct {
	Commander    string
	Header       string
	Total        int
	ComboName    string
	ComboURL     string
	AllCombosURL string
}

func (r ComboResult) Empty() bool {
	return r.Total == 0
}

type CardDetails struct {
	Name       string
	Link       string
	OracleText string
}

type Card struct {
	Name       string
	RulingsURI string
}

type Ruling struct {
	PublishedAt string
	Comment     string
}

type CardRulingSet struct {
	CardName string
	Rulings  []Ruling
}
