package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat setiap request dengan waktu WIB, satu baris
// per request. Latency ikut dicatat karena endpoint ekspor dokumen bisa
// lambat.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[HTTP] ${time} ${ip} ${method} ${path} -> ${status} (${latency})\n",
	})
}
