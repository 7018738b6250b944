package main

import "go.uber.org/zap"

var simLogger *zap.Logger

func initLogger() {
	if simLogger != nil {
		return
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	simLogger = logger
}

func closeLogger() {
	if simLogger != nil {
		simLogger.Sync()
		simLogger = nil
	}
}

func logInfo(msg string, fields ...zap.Field) {
	if simLogger != nil {
		simLogger.Info(msg, fields...)
	}
}

func logWarn(msg string, fields ...zap.Field) {
	if simLogger != nil {
		simLogger.Warn(msg, fields...)
	}
}
