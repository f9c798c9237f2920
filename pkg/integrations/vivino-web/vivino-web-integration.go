package vivinoweb

import "go.uber.org/zap"

const IntegrationName = "vivino_web"

type VivinoWebIntegration struct {
	logger *zap.Logger
}

func NewVivinoWebIntegration(logger *zap.Logger) *VivinoWebIntegration {
	return &VivinoWebIntegration{logger: logger}
}
