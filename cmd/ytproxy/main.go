package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/icecave/ytproxy/cmd"
	"github.com/icecave/ytproxy/frontend"
	"github.com/icecave/ytproxy/frontend/cert"
	"github.com/icecave/ytproxy/health"
	"github.com/icecave/ytproxy/proxy"
	"github.com/icecave/ytproxy/proxyprotocol"
	"github.com/icecave/ytproxy/upstream"
	"github.com/icecave/ytproxy/youtube"
	"go.uber.org/multierr"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var version = "notset"

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	config, err := cmd.GetConfigFromEnvironment()
	for _, e := range multierr.Errors(err) {
		logger.Printf("Warning: %s", e)
	}

	if config.APIKey == "" {
		logger.Println("Warning: YT_API_KEY is not set, every API request will fail")
	}

	transport, err := upstream.NewTransport()
	if err != nil {
		logger.Fatalln(err)
	}

	handler := &frontend.Handler{
		Next: &frontend.SecureHeaders{
			Next: &frontend.OriginGate{
				AllowedOrigin: config.AllowedOrigin,
				Next: frontend.NewRouter(
					&proxy.Handler{
						Whitelist: youtube.DefaultWhitelist,
						Upstream: &upstream.Client{
							BaseURL: config.UpstreamURL,
							HTTPClient: &http.Client{
								Transport: transport,
								Timeout:   config.UpstreamTimeout,
							},
							UserAgent: "ytproxy/" + version,
						},
						APIKey: config.APIKey,
						Logger: logger,
					},
					&health.HTTPHandler{},
				),
			},
		},
		Logger: logger,
	}

	server := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          logger,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.Fatalln(err)
	}

	if config.ProxyProtocol {
		listener = &proxyprotocol.Listener{
			Listener:      listener,
			HeaderTimeout: server.ReadHeaderTimeout,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Println(err)
		}
	}()

	logger.Printf("YouTube proxy listening on port %s", config.Port)

	if config.TLSEnabled() {
		server.TLSConfig = tlsConfig(config, logger)
		err = server.ServeTLS(listener, "", "")
	} else {
		server.Handler = h2c.NewHandler(handler, &http2.Server{})
		err = server.Serve(listener)
	}

	if !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalln(err)
	}

	logger.Println("Shut down")
}

func tlsConfig(config *cmd.Config, logger *log.Logger) *tls.Config {
	var providers []cert.Provider

	if config.Certificates.BasePath != "" {
		providers = append(providers, &cert.FileProvider{
			BasePath: config.Certificates.BasePath,
			Logger:   logger,
		})
	}

	if config.Certificates.RedisAddress != "" {
		providers = append(providers, &cert.RedisProvider{
			Client: redis.NewClient(&redis.Options{
				Addr:     config.Certificates.RedisAddress,
				Password: config.Certificates.RedisPassword,
			}),
			Logger:   logger,
			CacheAge: config.Certificates.RedisCacheExpire,
		})
	}

	adaptor := &cert.ProviderAdaptor{
		Provider: &cert.MultiProvider{Providers: providers},
	}

	return &tls.Config{
		GetCertificate:   adaptor.GetCertificate,
		NextProtos:       []string{"h2", "http/1.1"},
		MinVersion:       config.MinTLSVersion,
		MaxVersion:       config.MaxTLSVersion,
		CipherSuites:     config.CipherSuite,
		CurvePreferences: []tls.CurveID{tls.CurveP256, tls.CurveP384, tls.CurveP521},
	}
}
