package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Shared logger of every command in this module. Logs go to stderr unless told otherwise: stdout
// belongs to the challenge's two answer tokens.

var log, base *zap.SugaredLogger

func init() {
	/* $LOG_LEVEL applies to tests too. The default keeps the challenge binary quiet. */
	level := "error"
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		level = s
	}
	Init(level, "stderr")
}

// Logger returns the shared logger for callers that log through it directly.
func Logger() *zap.SugaredLogger { return base }

// Init replaces the logger. Output is "stderr", "stdout" or a file path.
func Init(logLevel, output string) {
	logger, err := newConfig(logLevel, output).Build()
	if err != nil {
		panic(err)
	}
	base = logger.Sugar()
	log = logger.WithOptions(zap.AddCallerSkip(1)).Sugar()
	log.Debugf("logger construction succeeded at level %s with output %s", logLevel, output)
}

func levelFromString(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

func newConfig(logLevel, output string) zap.Config {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime: func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(ts.Local().Format(time.RFC3339))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(levelFromString(logLevel)),
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}
}

func Debugf(template string, args ...any) { log.Debugf(template, args...) }

func Infof(template string, args ...any) { log.Infof(template, args...) }

func Warnf(template string, args ...any) { log.Warnf(template, args...) }

func Errorf(template string, args ...any) { log.Errorf(template, args...) }

func Fatalf(template string, args ...any) { log.Fatalf(template, args...) }
