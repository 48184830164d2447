package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はアプリ全体で使うloggerを作る。出力はstdoutのみ
func New(env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env != "prod" {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	return cfg.Build()
}
