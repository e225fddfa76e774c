package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Search normaliza un término de búsqueda: minúsculas y sin tildes/diacríticos.
// Los nombres comerciales de medicamentos se digitan con y sin tilde
// ("Acetaminofén" / "acetaminofen"); ambos deben encontrar lo mismo.
func Search(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
