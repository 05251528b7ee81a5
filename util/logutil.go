package util

import (
	"os"
	"time"

	"github.com/gogf/gf/os/gfile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogs installs the global logger. The console sink writes to stderr so stdout
// only ever carries the looked-up address; it shows warnings unless debug is set.
// A rotating file sink receiving every level is added when logFileName is not empty.
func SetupLogs(logFileName string, debug bool) error {

	var cores []zapcore.Core

	if logFileName != "" {
		if err := gfile.Mkdir(gfile.Dir(logFileName)); err != nil {
			return err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			TimeKey:     "ts",
			CallerKey:   "file",
			EncodeLevel: zapcore.CapitalLevelEncoder,
			EncodeTime: func(time time.Time, encoder zapcore.PrimitiveArrayEncoder) {
				encoder.AppendString(time.Format("2006-01-02 15:04:05"))
			},
			EncodeDuration: func(duration time.Duration, encoder zapcore.PrimitiveArrayEncoder) {
				encoder.AppendInt64(int64(duration) / 1000000)
			},
			EncodeCaller: zapcore.ShortCallerEncoder,
		}), zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFileName,
			MaxSize:    5, // MB
			MaxAge:     7, // days
			MaxBackups: 5,
			Compress:   true,
		}), zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= zapcore.DebugLevel
		})))
	}

	consoleLevel := zapcore.WarnLevel
	if debug {
		consoleLevel = zapcore.DebugLevel
	}
	cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:    "M",
		LevelKey:      "L",
		TimeKey:       "",
		NameKey:       "",
		CallerKey:     "",
		StacktraceKey: "",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
	}), zapcore.Lock(os.Stderr), zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= consoleLevel
	})))

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(logger)

	return nil
}
