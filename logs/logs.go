package logs

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.Mutex
	root    *zap.Logger
	logFile = "logs/go-dss.log"
)

// SetLogFile redirects file output. Must be called before the first Logger call.
func SetLogFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	logFile = path
}

func build() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, zap.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), zap.InfoLevel),
	)

	return zap.New(core)
}

// Logger returns a named sugared logger backed by the shared core.
func Logger(name string) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		root = build()
	}
	return root.Named(name).Sugar()
}
