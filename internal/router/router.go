package router

import (
	"time"

	"edugenie/internal/handler"
	"edugenie/internal/middleware"
	"edugenie/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Options controls the HTTP surface built by New.
type Options struct {
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New builds the fiber app with every route mounted. The prompt service is
// the only dependency; the app holds no other state.
func New(promptService service.PromptService, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "EduGenie API",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	pageHandler := handler.NewPageHandler(opts.StaticDir)
	promptHandler := handler.NewPromptHandler(promptService)
	validator := middleware.NewValidationMiddleware()

	app.Get("/", pageHandler.Index)
	app.Get("/healthz", pageHandler.Health)
	app.Static("/static", opts.StaticDir)
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Post("/ask", validator.ValidateAsk(), promptHandler.Ask)
	apiGroup.Post("/explain", validator.ValidateExplain(), promptHandler.Explain)
	apiGroup.Post("/quiz", validator.ValidateQuiz(), promptHandler.Quiz)
	apiGroup.Post("/summarize", validator.ValidateSummarize(), promptHandler.Summarize)

	return app
}
