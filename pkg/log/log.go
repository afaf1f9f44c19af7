package log

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pelas camadas HTTP
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

const (
	CorrelationIDKey    contextKey = "correlation_id"
	CorrelationIDHeader            = "X-Correlation-ID"
)

type entryLogger struct {
	*logrus.Entry
}

func (l entryLogger) WithField(key string, value any) Logger {
	return entryLogger{l.Entry.WithField(key, value)}
}

func (l entryLogger) WithFields(fields Fields) Logger {
	return entryLogger{l.Entry.WithFields(logrus.Fields(fields))}
}

func (l entryLogger) WithError(err error) Logger {
	return entryLogger{l.Entry.WithError(err)}
}

// Setup configura o logger global com o nível vindo da configuração.
// Níveis desconhecidos caem para info.
func Setup(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logrus.Warnf("Nível de log inválido: %q, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// WithCorrelationID guarda o ID recebido no contexto, gerando um novo quando vazio
func WithCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	correlationID = strings.TrimSpace(correlationID)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if ctx != nil {
		if correlationID := GetCorrelationID(ctx); correlationID != "" {
			entry = entry.WithField(string(CorrelationIDKey), correlationID)
		}
	}
	return entryLogger{entry}
}
