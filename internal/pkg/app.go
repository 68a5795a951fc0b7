package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"backoffice/internal/app/config"
	"backoffice/internal/app/handler"
	"backoffice/internal/app/middleware"

	_ "backoffice/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.APIHandler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// NewRouter gin с CORS, логированием запросов и swagger UI
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// Routes регистрирует все маршруты API
func (a *Application) Routes() {
	authMiddleware := a.Handler.AuthHandler.Auth
	loginLimiter := middleware.NewRateLimiter(a.Config.LoginRate.PerMinute, a.Config.LoginRate.Burst)

	a.Handler.RegisterAPIRoutes(a.Router, authMiddleware, loginLimiter)
}

// RunApp обслуживает запросы до отмены ctx, затем дожидается завершения текущих
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	a.Routes()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	server := &http.Server{
		Addr:    serverAddress,
		Handler: a.Router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Infof("Starting server on %s", serverAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	logrus.Info("Server down")
	return err
}
