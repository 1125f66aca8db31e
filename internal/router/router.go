package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"asq/docs"
	"asq/internal/config"
	"asq/internal/handler"
)

// maxBodySize caps every request body.
const maxBodySize = "10M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log logrus.FieldLogger,
	presenterHandler *handler.PresenterHandler,
	presentationHandler *handler.PresentationHandler,
	questionHandler *handler.QuestionHandler,
) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/presenters/register", presenterHandler.Register)
	e.POST("/presenters/login", presenterHandler.Login)

	e.GET("/presentations", presentationHandler.List)
	e.POST("/presentations", presentationHandler.Create)

	e.GET("/questions", questionHandler.List)
	e.POST("/questions/ask", questionHandler.Ask)
	e.PUT("/questions/nod", questionHandler.Nod)
	e.POST("/questions/answer", questionHandler.Answer)
}

// requestLogger writes one access log entry per request. Bodies are never
// logged since they carry passwords and session tokens.
func requestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			switch {
			case v.Error != nil:
				entry.WithError(v.Error).Error("request failed")
			case v.Status >= http.StatusInternalServerError:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
