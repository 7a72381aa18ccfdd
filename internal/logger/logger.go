package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init builds the process-wide zap logger and installs it as the global.
// In release mode logs are JSON and, when filePath is set, written to a
// rotating file; otherwise the development console encoder is used.
func Init(ginMode, filePath string) (*zap.Logger, error) {
	if ginMode != "release" {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		zap.ReplaceGlobals(log)
		return log, nil
	}

	if filePath == "" {
		log, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		zap.ReplaceGlobals(log)
		return log, nil
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		writer,
		zapcore.InfoLevel,
	)

	log := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(log)
	return log, nil
}
