// Package export renders move sets in the plain text export format used by
// team builders:
//
//	Bulbasaur @ Leftovers
//	Ability: Overgrow
//	EVs: 4 Def / 252 SpA / 252 Spe
//	Modest Nature
//	- Giga Drain
package export

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
)

const (
	optionSeparator = " / "
	spreadSeparator = " | "
)

// stat labels in export order
var statLabels = [6]string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}

// Render returns the export text of a move set. Every line ends in a newline.
// The header is always written; the other lines only when they have content.
func Render(set *dex.MoveSet) string {
	if set == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s @ %s\n", set.Pokemon, strings.Join(set.Items, optionSeparator))

	if len(set.Abilities) > 0 {
		fmt.Fprintf(&b, "Ability: %s\n", strings.Join(set.Abilities, optionSeparator))
	}
	if len(set.TeraTypes) > 0 {
		fmt.Fprintf(&b, "Tera Type: %s\n", strings.Join(set.TeraTypes, optionSeparator))
	}
	if evs := CompressSpreads(set.EVConfigs, dex.EVDefault); evs != "" {
		fmt.Fprintf(&b, "EVs: %s\n", evs)
	}
	if ivs := CompressSpreads(set.IVConfigs, dex.IVDefault); ivs != "" {
		fmt.Fprintf(&b, "IVs: %s\n", ivs)
	}
	if len(set.Natures) > 0 {
		fmt.Fprintf(&b, "%s Nature\n", strings.Join(set.Natures, optionSeparator))
	}
	for _, slot := range set.MoveSlots {
		fmt.Fprintf(&b, "- %s\n", FormatMoveSlot(slot))
	}

	return b.String()
}

// Document renders a move set under a generation and format heading
func Document(gen dex.Generation, format string, set *dex.MoveSet) string {
	return fmt.Sprintf("Generation: %s\nFormat: %s\n%s", gen, format, Render(set))
}

// CompressSpreads writes each spread as its non-default stats, e.g.
// "4 Def / 252 SpA / 252 Spe", and joins alternative spreads with " | ".
//
// A spread equal to def in every stat still takes its place in the join as
// an empty segment, so a lone all-default spread compresses to "".
func CompressSpreads(spreads []dex.StatSpread, def uint8) string {
	parts := make([]string, len(spreads))
	for i, spread := range spreads {
		parts[i] = CompressSpread(spread, def)
	}
	return strings.Join(parts, spreadSeparator)
}

// CompressSpread writes the stats of one spread that differ from def, in
// HP, Atk, Def, SpA, SpD, Spe order
func CompressSpread(spread dex.StatSpread, def uint8) string {
	values := [6]uint8{spread.HP, spread.Atk, spread.Def, spread.SpA, spread.SpD, spread.Spe}

	stats := make([]string, 0, len(values))
	for i, v := range values {
		if v != def {
			stats = append(stats, fmt.Sprintf("%d %s", v, statLabels[i]))
		}
	}
	return strings.Join(stats, optionSeparator)
}

// FormatMoveSlot joins the alternatives of one move slot. A typed
// alternative renders as "<move> <type>", e.g. "Hidden Power Fire".
func FormatMoveSlot(slot []dex.MoveSlot) string {
	moves := make([]string, len(slot))
	for i, m := range slot {
		if m.Type != nil {
			moves[i] = m.Move + " " + *m.Type
		} else {
			moves[i] = m.Move
		}
	}
	return strings.Join(moves, optionSeparator)
}
