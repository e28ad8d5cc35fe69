// Package device clasifica el User-Agent del cliente en móvil o escritorio.
// La clasificación solo decide la forma de la respuesta del detalle de
// factura; no tiene efectos secundarios.
package device

import "strings"

// Type tipo de dispositivo detectado.
type Type string

const (
	Mobile  Type = "mobile"
	Desktop Type = "desktop"
)

// Marcadores de User-Agent móviles (comparación case-insensitive).
var mobileMarkers = []string{
	"android",
	"webos",
	"iphone",
	"ipad",
	"ipod",
	"blackberry",
	"windows phone",
	"mobile",
}

// Classify devuelve Mobile si el User-Agent contiene alguno de los
// marcadores conocidos, Desktop en caso contrario. Función pura.
func Classify(userAgent string) Type {
	ua := strings.ToLower(userAgent)
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return Mobile
		}
	}
	return Desktop
}

// IsMobile azúcar para la clasificación booleana.
func IsMobile(userAgent string) bool {
	return Classify(userAgent) == Mobile
}
