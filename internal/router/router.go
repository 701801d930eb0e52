package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gandhamathanv-guvi/voice-translator/internal/config"
	"github.com/gandhamathanv-guvi/voice-translator/internal/handler"
	"github.com/gandhamathanv-guvi/voice-translator/internal/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Speech    *handler.SpeechHandler
	Languages *handler.LanguageHandler
	Pages     *handler.PagesHandler
	Health    *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	// Frontend pages and generated audio artifacts.
	r.Get("/", h.Pages.Index)
	r.Get("/dashboard", h.Pages.Dashboard)
	r.Get("/translate", h.Pages.Translate)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticRoot))))

	r.Get("/health", h.Health.Check)
	r.Get("/supported-languages", h.Languages.List)

	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/signup", h.Auth.Signup)
		api.Post("/login", h.Auth.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.RequireAuth)

			protected.Get("/me", h.Auth.Me)
			protected.Post("/generate-audio", h.Speech.GenerateAudio)
			protected.Post("/text-to-speech", h.Speech.TextToSpeech)
			protected.Post("/translate-and-speak", h.Speech.TranslateAndSpeak)
			protected.Post("/multi-language-speak", h.Speech.MultiLanguageSpeak)
		})
	})

	return r
}
