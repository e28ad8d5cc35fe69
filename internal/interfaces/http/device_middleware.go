package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/gestion-api/internal/domain/device"
)

// clave de locals donde el middleware deja el tipo de dispositivo.
const deviceLocalKey = "deviceType"

// DeviceMiddleware clasifica el User-Agent en móvil o escritorio y deja el
// resultado en locals. Solo se aplica a las rutas que cambian la forma de
// la respuesta según el dispositivo.
func DeviceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(deviceLocalKey, device.Classify(c.Get(fiber.HeaderUserAgent)))
		return c.Next()
	}
}

// GetDeviceType lee el tipo de dispositivo dejado por DeviceMiddleware.
// Devuelve Desktop si el middleware no corrió.
func GetDeviceType(c *fiber.Ctx) device.Type {
	if t, ok := c.Locals(deviceLocalKey).(device.Type); ok {
		return t
	}
	return device.Desktop
}
