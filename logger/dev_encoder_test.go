package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func devEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func TestDevEncoder_ColorizesLevel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	enc := newDevEncoder(devEncoderConfig())
	entry := zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "pronto"}

	buf, err := enc.EncodeEntry(entry, nil)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "\x1b[32mINFO\x1b[0m")
	assert.Contains(t, out, "pronto")
}

func TestDevEncoder_IndentsFields(t *testing.T) {
	enc := newDevEncoder(devEncoderConfig())
	entry := zapcore.Entry{Level: zapcore.DebugLevel, Time: time.Now(), Message: "consulta"}
	fields := []zapcore.Field{zap.String("entidade", "usuario"), zap.Int64("id", 7)}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "\n{")
	assert.Contains(t, out, `"entidade": "usuario"`)
	assert.Contains(t, out, `"id": 7`)
	assert.NotContains(t, out, `"msg"`)
}

func TestDevEncoder_NoFieldsSingleLine(t *testing.T) {
	enc := newDevEncoder(devEncoderConfig())
	entry := zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "atenção"}

	buf, err := enc.EncodeEntry(entry, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}
