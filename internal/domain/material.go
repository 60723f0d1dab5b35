package domain

import "strings"

// materials is the fixed reference list of paraglider cloths offered by
// the form's autocomplete.
var materials = []string{
	"Dominico N20D",
	"Dominico N30D",
	"Dominico D10",
	"Dominico D20",
	"Porcher Skytex 27",
	"Porcher Skytex 32",
	"Porcher Skytex 38",
	"Porcher Skytex 40",
	"Porcher Skytex 45 Hard",
	"Porcher Skytex 70",
	"MJ Trilam 32",
	"MJ Trilam 40",
	"Myungjin MJ32 MF",
	"Myungjin MJ40 MF",
	"Ripstop Nylon 40D",
	"Dyneema Reinforcement Tape",
	"Mylar Laminate",
}

const maxMaterialSuggestions = 10

// FilterMaterials returns up to ten suggestions for the given query.
// Prefix matches rank before substring matches; the comparison is
// case-insensitive. An empty query returns the head of the list.
func FilterMaterials(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]string, 0, maxMaterialSuggestions)
		for _, m := range materials {
			if len(out) == maxMaterialSuggestions {
				break
			}
			out = append(out, m)
		}
		return out
	}

	var prefix, substr []string
	for _, m := range materials {
		lm := strings.ToLower(m)
		switch {
		case strings.HasPrefix(lm, q):
			prefix = append(prefix, m)
		case strings.Contains(lm, q):
			substr = append(substr, m)
		}
	}
	out := append(prefix, substr...)
	if len(out) > maxMaterialSuggestions {
		out = out[:maxMaterialSuggestions]
	}
	return out
}
