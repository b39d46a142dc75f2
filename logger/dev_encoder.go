package logger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// devEncoder renders console-mode log entries for terminals: the level is
// colorized by severity and structured fields are printed as indented JSON
// below the log line.
type devEncoder struct {
	zapcore.Encoder
	consoleEncoder zapcore.Encoder
	jsonEncoder    zapcore.Encoder
	pool           buffer.Pool
}

func newDevEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	consoleEnc := zapcore.NewConsoleEncoder(encoderConfig)
	return &devEncoder{
		Encoder:        consoleEnc,
		consoleEncoder: consoleEnc,
		jsonEncoder:    zapcore.NewJSONEncoder(encoderConfig),
		pool:           buffer.NewPool(),
	}
}

func (e *devEncoder) Clone() zapcore.Encoder {
	return &devEncoder{
		Encoder:        e.Encoder.Clone(),
		consoleEncoder: e.consoleEncoder.Clone(),
		jsonEncoder:    e.jsonEncoder.Clone(),
		pool:           e.pool,
	}
}

func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	consoleBuf, err := e.consoleEncoder.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}

	line := strings.TrimRight(consoleBuf.String(), "\n")
	line = e.colorizeLevel(line, entry.Level)

	if len(fields) > 0 {
		fieldBuf, encErr := e.jsonEncoder.EncodeEntry(entry, fields)
		if encErr != nil {
			return nil, encErr
		}

		var fieldsMap map[string]any
		if err = json.Unmarshal(fieldBuf.Bytes(), &fieldsMap); err != nil {
			line += " " + strings.TrimRight(fieldBuf.String(), "\n")
		} else {
			line = appendFields(line, fieldsMap, fieldBuf)
		}
	}

	buf := e.pool.Get()
	buf.AppendString(line)
	buf.AppendString("\n")

	return buf, nil
}

// appendFields attaches the remaining structured fields as indented JSON,
// skipping keys already rendered in the log prefix.
func appendFields(line string, fieldsMap map[string]any, fieldBuf *buffer.Buffer) string {
	delete(fieldsMap, messageKey)
	delete(fieldsMap, levelKey)
	delete(fieldsMap, nameKey)
	delete(fieldsMap, callerKey)
	delete(fieldsMap, timeKey)

	if len(fieldsMap) == 0 {
		return line
	}

	prettyJSON, err := json.MarshalIndent(fieldsMap, "", "  ")
	if err != nil {
		return line + " " + strings.TrimRight(fieldBuf.String(), "\n")
	}
	return line + "\n" + string(prettyJSON)
}

func (e *devEncoder) colorizeLevel(line string, level zapcore.Level) string {
	var colorFunc func(a ...any) string

	switch level {
	case zapcore.DebugLevel:
		colorFunc = color.New(color.FgCyan).SprintFunc()
	case zapcore.InfoLevel:
		colorFunc = color.New(color.FgGreen).SprintFunc()
	case zapcore.WarnLevel:
		colorFunc = color.New(color.FgYellow).SprintFunc()
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		colorFunc = color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		colorFunc = func(a ...any) string { return fmt.Sprint(a...) }
	}

	capLevel := level.CapitalString()
	if strings.Contains(line, capLevel) {
		return strings.Replace(line, capLevel, colorFunc(capLevel), 1)
	}
	lowLevel := level.String()
	if strings.Contains(line, lowLevel) {
		return strings.Replace(line, lowLevel, colorFunc(lowLevel), 1)
	}
	return line
}
