package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Компонентные логгеры; до вызова InitLogger они отключены
	Main    = zerolog.Nop()
	SysInfo = zerolog.Nop()
	Report  = zerolog.Nop()
)

// InitLogger инициализирует логгеры на основе переменных окружения.
// Вывод идет в stderr: stdout занят отчетом.
func InitLogger() {
	Init(os.Stderr)
}

// Init - то же, что InitLogger, но с явным приемником вывода
func Init(out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return file + ":" + strconv.Itoa(line)
	}

	// Определяем уровень логгирования
	level := getLogLevel()
	zerolog.SetGlobalLevel(level)

	// Консольный вывод для разработки, JSON для продакшена
	if isDevelopmentMode() {
		writer := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
		writer.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(i.(string))
		}
		log.Logger = zerolog.New(writer).With().Timestamp().Caller().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Caller().Logger()
	}

	Main = WithComponent("main")
	SysInfo = WithComponent("sysinfo")
	Report = WithComponent("report")

	Main.Debug().
		Str("level", level.String()).
		Bool("development", isDevelopmentMode()).
		Msg("Logger initialized")
}

// WithComponent создает логгер с полем component
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// getLogLevel определяет уровень логгирования из переменной окружения
func getLogLevel() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// isDevelopmentMode проверяет режим разработки
func isDevelopmentMode() bool {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if env == "" {
		env = strings.ToLower(os.Getenv("ENV"))
	}
	return env == "development" || env == "dev" || env == ""
}
