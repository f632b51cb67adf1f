package service

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/google/uuid"

	"github.com/theapemachine/webtool/pkg/browser"
	"github.com/theapemachine/webtool/pkg/errors"
)

const defaultMaxResults = 10

/*
Server exposes the automation core over HTTP. Every operation gets its own
request-scoped browser.Tool whose teardown is deferred before any work
starts, so browser resources are released on every exit path.
*/
type Server struct {
	app *fiber.App
	cfg browser.Config
}

/*
New constructs the server around a resolved automation config.
*/
func New(cfg browser.Config) *Server {
	srv := &Server{
		app: fiber.New(fiber.Config{
			AppName:      "webtool",
			ServerHeader: "Webtool-Server",
		}),
		cfg: cfg,
	}

	srv.routes()
	return srv
}

func (srv *Server) routes() {
	srv.app.Use(logger.New())

	srv.app.Use(func(ctx fiber.Ctx) error {
		ctx.Locals("request_id", uuid.NewString())
		return ctx.Next()
	})

	// Probes get their own routes; mounted via Use the checker would
	// answer every GET before it reaches a real handler.
	srv.app.Get("/livez", healthcheck.New())
	srv.app.Get("/readyz", healthcheck.New())

	srv.app.Get("/", srv.handleRoot)
	srv.app.Get("/functions", srv.handleFunctions)
	srv.app.Post("/web_search", srv.handleWebSearch)
	srv.app.Post("/navigate", srv.handleNavigate)
	srv.app.Post("/extract_content", srv.handleExtractContent)
	srv.app.Post("/summarize", srv.handleSummarize)
	srv.app.Post("/crawl", srv.handleCrawl)
	srv.app.Post("/browser_tool", srv.handleBrowserTool)
}

func (srv *Server) Listen(addr string) error {
	log.Info("serving web automation tools", "addr", addr)
	return srv.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (srv *Server) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

/*
fail translates an error from the taxonomy to its HTTP rendering.
*/
func (srv *Server) fail(ctx fiber.Ctx, err error) error {
	status := errors.HTTPStatus(err)

	if status >= 500 {
		log.Error("operation failed", "request_id", ctx.Locals("request_id"), "path", ctx.Path(), "error", err)
	} else {
		log.Warn("request rejected", "request_id", ctx.Locals("request_id"), "path", ctx.Path(), "error", err)
	}

	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
