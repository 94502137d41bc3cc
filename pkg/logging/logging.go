// Package logging builds the service logger: structured JSON to stdout,
// teed into a rotating file under the configured log directory. The file
// side feeds the retention janitor; everything else in the service only ever
// sees a *zap.SugaredLogger.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options for constructing the logger.
type Options struct {
	// Dir is the log directory; created if missing. Empty disables the
	// file sink (used by tests).
	Dir string
	// FileName is the active log file name inside Dir. Rotated copies keep
	// this name as their prefix, which is what the janitor matches on.
	FileName string
	// Level defaults to info.
	Level zapcore.LevelEnabler
}

// New builds the logger. Returns the sugared logger and its underlying
// *zap.Logger (fx wants the desugared one for its event logger).
func New(opts Options) (*zap.SugaredLogger, *zap.Logger, error) {
	if opts.Level == nil {
		opts.Level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), opts.Level),
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, nil, err
		}
		fileSink := &lumberjack.Logger{
			Filename:  filepath.Join(opts.Dir, opts.FileName),
			MaxSize:   50, // megabytes per rotated chunk
			LocalTime: true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(fileSink), opts.Level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger.Sugar(), logger, nil
}
