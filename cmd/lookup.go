package cmd

import (
	"go.uber.org/zap"

	"cellarbook.org/CellarBook/configs"
	"cellarbook.org/CellarBook/pkg/integrations"
)

type LookupCmd struct {
	ConfigFile string `default:".CellarBook.toml" help:"Path to config file" short:"c"`
	Query      string `arg:"" help:"Wine name to look up"`
}

func (l *LookupCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(l.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	for _, name := range conf.Integrations.Wine {
		integration := integrations.GetIntegration(name, logger)
		if integration == nil {
			logger.Warn("unknown integration", zap.String("integration", name))

			continue
		}

		wines, err := integration.FindWine(l.Query)
		if err != nil {
			logger.Error("failed wine lookup", zap.String("integration", name), zap.Error(err))

			continue
		}

		for _, wine := range wines {
			logger.Info("found wine",
				zap.String("integration", name),
				zap.String("name", wine.Name),
				zap.Stringp("producer", wine.Producer),
				zap.Intp("vintage", wine.Vintage),
				zap.Stringp("region", wine.Region),
				zap.Stringp("country", wine.Country))
		}
	}

	return nil
}
