package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/internal/controllers/healthz"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config sets up the gin engine with all middlewares.
func Config(cfg *config.Config) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// Session cookies are signed with the configured secret
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("expense_tracker_session", store))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	return r, nil
}

// AttachRoutes attaches the routes to the router group that is passed in.
// Separating this from Config() allows us to attach the routes to different
// paths for different use cases.
func AttachRoutes(gate auth.Gate, group *gin.RouterGroup) {
	// The root path lists all expenses
	group.GET("", controllers.GetExpenses)
	group.OPTIONS("", httputil.OptionsGet)

	group.GET("/version", controllers.GetVersion)
	group.OPTIONS("/version", httputil.OptionsGet)

	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// Prometheus metrics
	enableMetrics, ok := os.LookupEnv("ENABLE_METRICS")
	if ok && enableMetrics == "true" {
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	expense := group.Group("/expense")
	{
		expense.GET("/:id", controllers.GetExpense)
		expense.OPTIONS("/:id", controllers.OptionsExpenseDetail)
	}

	newExpense := group.Group("/new-expense")
	{
		newExpense.GET("", controllers.GetNewExpense)
		newExpense.POST("", auth.SessionRequired(), controllers.CreateExpense)
		newExpense.OPTIONS("", httputil.OptionsGetPost)
	}

	group.POST("/login", controllers.PostLogin(gate))
	group.OPTIONS("/login", httputil.OptionsPost)

	group.POST("/logout", controllers.PostLogout)
	group.OPTIONS("/logout", httputil.OptionsPost)
}
