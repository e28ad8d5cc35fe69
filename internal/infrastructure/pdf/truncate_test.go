package pdf

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_CortaPorRunas(t *testing.T) {
	// "José Pérez Hernández" tiene tildes multibyte alrededor del corte.
	got := truncate("José Pérez Hernández y Asociados S.A.S.", 20)

	assert.True(t, utf8.ValidString(got), "el recorte no puede partir una secuencia UTF-8")
	assert.Equal(t, 20, utf8.RuneCountInString(got), "el límite se cuenta en caracteres, no en bytes")
	assert.Equal(t, "José Pérez Hernández", got)
}

func TestTruncate_CorteSobreLaTilde(t *testing.T) {
	// Corte exactamente en medio de una runa multibyte ("ñ" ocupa 2 bytes).
	got := truncate("ñññññ", 3)
	assert.Equal(t, "ñññ", got)
	assert.True(t, utf8.ValidString(got))
}

func TestTruncate_CortaSoloSiExcede(t *testing.T) {
	assert.Equal(t, "Acme", truncate("Acme", 20))
	assert.Equal(t, "", truncate("", 5))

	// Justo en el límite: sin recorte.
	assert.Equal(t, "José Pérez", truncate("José Pérez", 10))
}
