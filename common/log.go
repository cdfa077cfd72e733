package common

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// Log returns the process logger. It is a no-op until SetupLogger runs, which
// keeps tests quiet.
func Log() *zap.SugaredLogger {
	return logger.Load()
}

// SetupLogger replaces the process logger. level is a zap level name; dev
// switches to the colored console encoder.
func SetupLogger(level string, dev bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil

	z, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	s := z.Sugar()
	logger.Store(s)
	return s, nil
}
