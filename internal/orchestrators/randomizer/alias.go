package randomizer

import "strings"

const megaSuffix = "-mega"

// Alias turns a pokemon name from the basics listing into the alias the
// detail endpoint expects: "Great Tusk" becomes "great-tusk".
func Alias(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// FallbackAlias drops "-mega" from an alias. Some mega forms are listed as
// "charizard-mega-x" but served as "charizard-x".
func FallbackAlias(alias string) string {
	return strings.ReplaceAll(alias, megaSuffix, "")
}
