package servertest

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/server"
)

func HTTPTestServerFactory() server.HTTPServerFactory {
	return func(handler http.Handler, config server.HTTPServerConfig, log logger.Log) (server.APIServer, error) {
		return NewHTTPTestServer(handler, config, log)
	}
}

// HTTPTestServer is an HTTP(S) test server created using the Go httptest package.
// It ignores the configured address and runs on a random local port.
type HTTPTestServer struct {
	testServer *httptest.Server
	config     server.HTTPServerConfig
	log        logger.Log
}

func NewHTTPTestServer(
	handler http.Handler,
	config server.HTTPServerConfig,
	log logger.Log,
) (*HTTPTestServer, error) {
	testServer := httptest.NewUnstartedServer(handler)
	if config.TLSConfig != nil {
		cert, err := tls.LoadX509KeyPair(config.TLSConfig.CertificateFile, config.TLSConfig.PrivateKeyFile)
		if err != nil {
			return nil, err
		}
		testServer.TLS = &tls.Config{
			Certificates: []tls.Certificate{cert},
		}
	}
	return &HTTPTestServer{
		testServer: testServer,
		config:     config,
		log:        log,
	}, nil
}

// Start starts the test server. The server is started on a goroutine so this function returns immediately.
func (s *HTTPTestServer) Start() {
	if s.config.TLSConfig != nil {
		s.testServer.StartTLS()
		s.log.Infof("HTTPS listening on URL %s", s.GetServerURL())
	} else {
		s.testServer.Start()
		s.log.Infof("HTTP listening on URL %s", s.GetServerURL())
	}
}

// Stop closes the test server, blocking until all outstanding requests have completed.
func (s *HTTPTestServer) Stop(ctx context.Context) error {
	s.testServer.Close()
	return nil
}

func (s *HTTPTestServer) GetServerURL() string {
	return s.testServer.URL
}

func (s *HTTPTestServer) GetHTTPServer() *http.Server {
	return s.testServer.Config
}
