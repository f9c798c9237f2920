package cmd

import (
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"cellarbook.org/CellarBook/configs"
	"cellarbook.org/CellarBook/pkg/api"
	"cellarbook.org/CellarBook/pkg/auth"
	"cellarbook.org/CellarBook/pkg/catalog"
	"cellarbook.org/CellarBook/pkg/lifecycle"
	"cellarbook.org/CellarBook/pkg/repository"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".CellarBook.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewAuthManager(conf, logger)

	mux := http.NewServeMux()

	// Health and reflection stay anonymous for probes and grpcurl.
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker()
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	cat := catalog.NewCatalog(repo, logger)
	engine := lifecycle.NewEngine(repo, repo, repo, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	handler := api.NewHandler(cat, engine, logger)
	apiGroup := router.Group("/api/v1")
	apiGroup.Use(authManager.GinAuthMiddleware())
	handler.Register(apiGroup)
	mux.Handle("/api/", router)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
