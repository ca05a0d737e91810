// Package logging builds the zap loggers used by the command line tool.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoding selects how log records are rendered.
type Encoding int8

const (
	CONSOLE Encoding = iota
	JSON
	LOGFMT
)

// Config is used to provide dependencies to a logger.
type Config struct {
	// Level is the minimum enabled level: debug, info, warn or error. The
	// default is info.
	Level string

	// Format is one of console, json or logfmt. The default is console.
	Format string

	// Writer is where log records go. Log records are written to stderr if
	// Writer is not provided.
	Writer io.Writer
}

// ParseEncoding maps a format name to an Encoding.
func ParseEncoding(format string) (Encoding, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return CONSOLE, nil
	case "json":
		return JSON, nil
	case "logfmt":
		return LOGFMT, nil
	default:
		return CONSOLE, errors.Errorf("unknown log format %q", format)
	}
}

// New returns a logger configured by c.
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(c.Level); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", c.Level)
		}
	}

	encoding, err := ParseEncoding(c.Format)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.NameKey = "name"

	var encoder zapcore.Encoder
	switch encoding {
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case LOGFMT:
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	default:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(zapcore.NewCore(encoder, writeSyncer(c.Writer), level)), nil
}

func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	switch t := w.(type) {
	case nil:
		return zapcore.Lock(os.Stderr)
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.AddSync(w)
	}
}
