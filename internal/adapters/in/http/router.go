package http

import (
	"context"
	"net/http"
	"sync"

	"deliveryscheduler/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// NewRouter builds the echo instance with the API routes, /health and the
// OpenAPI document under /swagger.
func NewRouter(server *Server, logger zerolog.Logger) (*echo.Echo, error) {
	if err := registerSwagger(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

// registerSwagger validates the embedded OpenAPI document and publishes it
// through swag, where echo-swagger reads it from. swag panics on a second
// registration under the same name.
func registerSwagger() error {
	swaggerOnce.Do(func() {
		doc, err := servers.GetSwagger()
		if err != nil {
			swaggerErr = err
			return
		}

		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = err
			return
		}

		raw, err := doc.MarshalJSON()
		if err != nil {
			swaggerErr = err
			return
		}

		swag.Register(swag.Name, &swag.Spec{
			Version:          doc.Info.Version,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return swaggerErr
}
