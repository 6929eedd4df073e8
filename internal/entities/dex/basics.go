package dex

import (
	"encoding/json"
	"fmt"
)

// StandardStatus is the isNonstandard value of pokemon legal in standard play.
// Every other value (Past, Future, Unobtainable, ...) is excluded by the randomizer.
const StandardStatus = "Standard"

// BasicsResponse is the bulk listing returned by dump-basics
type BasicsResponse struct {
	Pokemon   []BasicsPokemon `json:"pokemon"`
	Formats   []Format        `json:"formats"`
	Natures   []Nature        `json:"natures"`
	Abilities []Ability       `json:"abilities"`
	Moves     []Move          `json:"moves"`
	Types     []Type          `json:"types"`
	Items     []Item          `json:"items"`
}

// StandardPokemon returns the pokemon whose standardness flag is exactly "Standard"
func (b *BasicsResponse) StandardPokemon() []BasicsPokemon {
	if b == nil {
		return nil
	}

	standard := make([]BasicsPokemon, 0, len(b.Pokemon))
	for _, p := range b.Pokemon {
		if p.IsStandard() {
			standard = append(standard, p)
		}
	}
	return standard
}

// BasicsPokemon is one pokemon summary in the bulk listing
type BasicsPokemon struct {
	Name          string      `json:"name"`
	HP            uint8       `json:"hp"`
	Atk           uint8       `json:"atk"`
	Def           uint8       `json:"def"`
	SpA           uint8       `json:"spa"`
	SpD           uint8       `json:"spd"`
	Spe           uint8       `json:"spe"`
	Weight        float64     `json:"weight"`
	Height        float64     `json:"height"`
	Types         []string    `json:"types"`
	Abilities     []string    `json:"abilities"`
	Formats       []string    `json:"formats"`
	IsNonstandard string      `json:"isNonstandard"`
	Oob           *PokemonOob `json:"oob,omitempty"`
}

// IsStandard reports whether the pokemon is eligible for standard play
func (p BasicsPokemon) IsStandard() bool {
	return p.IsNonstandard == StandardStatus
}

// BaseStatTotal sums the six base stats
func (p BasicsPokemon) BaseStatTotal() int {
	return int(p.HP) + int(p.Atk) + int(p.Def) + int(p.SpA) + int(p.SpD) + int(p.Spe)
}

// PokemonOob carries out-of-battle data
type PokemonOob struct {
	DexNumber int16    `json:"dex_number"`
	Evos      []string `json:"evos"`
	Alts      []string `json:"alts"`
	GenFamily []string `json:"genfamily"`
}

// Format is a competitive format known to a generation
type Format struct {
	Name      string   `json:"name"`
	Shorthand string   `json:"shorthand"`
	GenFamily []string `json:"genfamily"`
}

// Nature holds the stat multipliers of a nature
type Nature struct {
	Name      string   `json:"name"`
	HP        float64  `json:"hp"`
	Atk       float64  `json:"atk"`
	Def       float64  `json:"def"`
	SpA       float64  `json:"spa"`
	SpD       float64  `json:"spd"`
	Spe       float64  `json:"spe"`
	Summary   string   `json:"summary"`
	GenFamily []string `json:"genfamily"`
}

// Ability is an ability entry in the basics listing
type Ability struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	IsNonstandard string   `json:"isNonstandard"`
	GenFamily     []string `json:"genfamily"`
}

// Move is a move entry in the basics listing
type Move struct {
	Name          string   `json:"name"`
	IsNonstandard string   `json:"isNonstandard"`
	Category      string   `json:"category"`
	Power         uint8    `json:"power"`
	Accuracy      uint8    `json:"accuracy"`
	Priority      int8     `json:"priority"`
	PP            uint8    `json:"pp"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	Flags         []string `json:"flags"`
	GenFamily     []string `json:"genfamily"`
}

// Type is a pokemon type with its attacking effectiveness chart
type Type struct {
	Name          string              `json:"name"`
	AtkEffectives []TypeEffectiveness `json:"atk_effectives"`
	GenFamily     []string            `json:"genfamily"`
	Description   string              `json:"description"`
}

// TypeEffectiveness is one [defending type, multiplier] pair
type TypeEffectiveness struct {
	Type       string
	Multiplier float64
}

// UnmarshalJSON decodes the two element array form ["Fire", 2]
func (t *TypeEffectiveness) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("type effectiveness: expected 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &t.Type); err != nil {
		return fmt.Errorf("type effectiveness type: %w", err)
	}
	if err := json.Unmarshal(pair[1], &t.Multiplier); err != nil {
		return fmt.Errorf("type effectiveness multiplier: %w", err)
	}
	return nil
}

// MarshalJSON encodes the pair back into its array form
func (t TypeEffectiveness) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{t.Type, t.Multiplier})
}

// Item is a held item entry in the basics listing
type Item struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	IsNonstandard string   `json:"isNonstandard"`
	GenFamily     []string `json:"genfamily"`
}
