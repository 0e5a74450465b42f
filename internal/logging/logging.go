// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostic zap logger from configuration.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/bible-citations/pkg/types"
)

// New returns a console logger writing to out at cfg.Level: "none"
// discards everything, "normal" logs info and above, "debug" logs all.
// An empty level means "normal".
func New(cfg types.LoggingConfig, out io.Writer, name string) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case types.LogNone:
		return zap.NewNop(), nil
	case types.LogNormal, "":
		level = zapcore.InfoLevel
	case types.LogDebug:
		level = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q: use none, normal or debug", cfg.Level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(consoleEnc{zapcore.NewConsoleEncoder(ec)}, zapcore.AddSync(out), level)
	return zap.New(core).Named(name), nil
}

// consoleEnc prints errors by message only, so combined span failures do
// not expand into errorVerbose blocks.
type consoleEnc struct {
	zapcore.Encoder
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		if e, ok := f.Interface.(error); ok && f.Type == zapcore.ErrorType {
			f.Interface = errors.New(e.Error())
		}
		out[i] = f
	}
	return c.Encoder.EncodeEntry(ent, out)
}
