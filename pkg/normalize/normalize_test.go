package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/pkg/normalize"
)

func TestSearch_QuitaTildesYMinusculas(t *testing.T) {
	assert.Equal(t, "acetaminofen", normalize.Search("Acetaminofén"))
	assert.Equal(t, "ibuprofeno", normalize.Search("  IBUPROFENO "))
	assert.Equal(t, "vitamina niña", normalize.Search("Vitamina NIÑA"))
}

func TestSearch_TextoPlanoQuedaIgual(t *testing.T) {
	assert.Equal(t, "amoxicilina 500", normalize.Search("amoxicilina 500"))
}
