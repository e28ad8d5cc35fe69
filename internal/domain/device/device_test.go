package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcastano/gestion-api/internal/domain/device"
)

// User-Agents reales capturados de navegadores comunes.
const (
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaIPad    = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Safari/604.1"
	uaChrome  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaFirefox = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	uaCurl    = "curl/8.4.0"
)

func TestClassify_MovilesConocidos(t *testing.T) {
	casos := map[string]string{
		"iphone":        uaIPhone,
		"android":       uaAndroid,
		"ipad":          uaIPad,
		"windows phone": "Mozilla/5.0 (Windows Phone 10.0; Android 6.0.1)",
		"blackberry":    "Mozilla/5.0 (BlackBerry; U; BlackBerry 9900)",
	}
	for nombre, ua := range casos {
		assert.Equal(t, device.Mobile, device.Classify(ua),
			"el marcador %q debe clasificarse como móvil", nombre)
	}
}

func TestClassify_EscritorioConocidos(t *testing.T) {
	for _, ua := range []string{uaChrome, uaFirefox, uaCurl} {
		assert.Equal(t, device.Desktop, device.Classify(ua),
			"User-Agent %q debe clasificarse como escritorio", ua)
	}
}

// Sin User-Agent (clientes programáticos) se asume escritorio.
func TestClassify_VacioEsEscritorio(t *testing.T) {
	assert.Equal(t, device.Desktop, device.Classify(""))
}

// La comparación no distingue mayúsculas.
func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, device.Mobile, device.Classify("Mozilla/5.0 (IPHONE)"))
	assert.Equal(t, device.Mobile, device.Classify("ANDROID navegador raro"))
}

func TestIsMobile(t *testing.T) {
	assert.True(t, device.IsMobile(uaAndroid))
	assert.False(t, device.IsMobile(uaChrome))
}
