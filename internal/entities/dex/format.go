package dex

// FormatResponse is the detail record returned by dump-format
type FormatResponse struct {
	Languages             []string `json:"languages"`
	Description           string   `json:"description"`
	PokemonWithStrategies []string `json:"pokemon_with_strategies"`
}
