package server

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/routes"
	"github.com/gwhitehawk/device-net/server/metrics"
)

const requestTimeout = 60 * time.Second

type AppAPIServerConfig struct {
	HTTPServerConfig
}

type AppAPIServer struct {
	APIServer
}

func NewAppAPIServer(router *AppAPIRouter, config AppAPIServerConfig, httpServerFactory HTTPServerFactory, logFactory logger.LogFactory) (*AppAPIServer, error) {
	httpServer, err := httpServerFactory(router, config.HTTPServerConfig, logFactory("AppAPIServer"))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP server: %w", err)
	}
	return &AppAPIServer{
		APIServer: httpServer,
	}, nil
}

type AppAPIRouter struct {
	chi.Router
}

func NewAppAPIRouter(
	device *DeviceAPI,
	network *NetworkAPI,
	metrics *metrics.Metrics,
	logFactory logger.LogFactory) *AppAPIRouter {

	log := logFactory("AppAPIRouter")
	base := NewAPIBase(log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.Compress(6))
	r.Use(middleware.Timeout(requestTimeout))
	r.NotFound(base.NotFound)
	r.MethodNotAllowed(base.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"ETag", "Location"},
			AllowCredentials: false,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", device.List)
			r.Post("/", device.Create)
			r.Get("/{"+routes.MACAddressURLParam+"}", device.Get)
		})
		r.Route("/network", func(r chi.Router) {
			r.Get("/", network.GetFull)
			r.Get("/{"+routes.MACAddressURLParam+"}", network.Get)
		})
	})
	return &AppAPIRouter{Router: r}
}
