package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New создаёт zerolog-логгер с уровнем из конфигурации.
// Неизвестный уровень тихо понижается до info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
