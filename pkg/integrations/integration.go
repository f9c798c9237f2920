package integrations

import (
	"go.uber.org/zap"

	vivinoweb "cellarbook.org/CellarBook/pkg/integrations/vivino-web"
	"cellarbook.org/CellarBook/pkg/model"
)

type Integration interface {
	FindWine(name string) ([]model.Wine, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == vivinoweb.IntegrationName {
		return vivinoweb.NewVivinoWebIntegration(logger)
	}

	return nil
}
