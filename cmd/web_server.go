package cmd

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"laundry/internal/adapters/in/http"
	"laundry/internal/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewWebServer builds the echo instance: operational endpoints, the
// middleware chain and every /customer route. metrics may be nil.
func NewWebServer(
	root *CompositionRoot,
	health http.HealthProbe,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(root.config.LogLevel))
	e.HTTPErrorHandler = http.NewHTTPErrorHandler(logger.With("component", "http"))

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"*"},
		AllowMethods: []string{
			nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodPut, nethttp.MethodPatch,
			nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions,
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger.With("component", "access"))))
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(root.config.ServiceName)))

	if metrics != nil {
		httpMetrics, err := telemetry.HTTPMetrics(metrics.Meter())
		if err != nil {
			return nil, err
		}
		e.Use(httpMetrics)
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	e.GET("/health", http.NewHealthHandler(health))

	doc, err := http.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := http.NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	http.RegisterHandlers(e, root.CreateServer())

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= nethttp.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
