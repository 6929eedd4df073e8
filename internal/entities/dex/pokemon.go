package dex

// Stat spread defaults. An EV of 0 and an IV of 31 are left out of export text.
const (
	EVDefault uint8 = 0
	IVDefault uint8 = 31
)

// PokemonResponse is the detail record returned by dump-pokemon
type PokemonResponse struct {
	Languages  []string   `json:"languages"`
	Learnset   []string   `json:"learnset"`
	Strategies []Strategy `json:"strategies"`
}

// StrategiesForFormat returns the strategies whose format label equals format.
// An empty format returns every strategy.
func (p *PokemonResponse) StrategiesForFormat(format string) []Strategy {
	if p == nil {
		return nil
	}
	if format == "" {
		return p.Strategies
	}

	var matched []Strategy
	for _, s := range p.Strategies {
		if s.Format == format {
			matched = append(matched, s)
		}
	}
	return matched
}

// Strategy groups the recommended sets of one pokemon in one format
type Strategy struct {
	Format   string    `json:"format"`
	Overview string    `json:"overview"`
	Comments string    `json:"comments"`
	MoveSets []MoveSet `json:"movesets"`
	Credits  Credits   `json:"credits"`
}

// MoveSet is a single recommended build ("set"). Older generations omit
// several of the lists, so any of them may be nil.
type MoveSet struct {
	Name        string       `json:"name"`
	Pokemon     string       `json:"pokemon"`
	Shiny       bool         `json:"shiny"`
	Gender      string       `json:"gender"`
	Description string       `json:"description"`
	Abilities   []string     `json:"abilities"`
	Items       []string     `json:"items"`
	TeraTypes   []string     `json:"teratypes"`
	MoveSlots   [][]MoveSlot `json:"moveslots"`
	EVConfigs   []StatSpread `json:"evconfigs"`
	IVConfigs   []StatSpread `json:"ivconfigs"`
	Natures     []string     `json:"natures"`
}

// MoveSlot is one alternative within a move slot. Type is set for moves
// whose type is chosen by the set, e.g. Hidden Power.
type MoveSlot struct {
	Move string  `json:"move"`
	Type *string `json:"type,omitempty"`
}

// StatSpread holds one value per stat. It is used for both EV and IV
// spreads; which default applies is up to the caller.
type StatSpread struct {
	HP  uint8 `json:"hp"`
	Atk uint8 `json:"atk"`
	Def uint8 `json:"def"`
	SpA uint8 `json:"spa"`
	SpD uint8 `json:"spd"`
	Spe uint8 `json:"spe"`
}

// Credits lists who wrote and checked a strategy
type Credits struct {
	Teams     []Team   `json:"teams"`
	WrittenBy []Member `json:"writtenBy"`
}

// Team is a credited group of site members
type Team struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// Member is a site user
type Member struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
