package http

import (
	"net/http"

	"diary/internal/account"
	"diary/internal/config"
	"diary/internal/diary"
	"diary/internal/http/handler"
	mw "diary/internal/http/middleware"
	"diary/internal/oauth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Deps are the process-lifetime stores and collaborators shared by all handlers.
type Deps struct {
	Accounts *account.Store
	Diaries  *diary.Store
	Google   oauth.Provider
	Log      *zap.Logger
}

func NewRouter(cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLog(d.Log))
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/", handler.Health)

	ah := &handler.AuthHandler{
		Accounts: d.Accounts,
		Provider: d.Google,
		Validate: handler.NewValidator(),
		Log:      d.Log,
	}
	r.Post("/SignUp", ah.SignUp)
	r.Post("/Login", ah.Login)
	r.Post("/auth/google", ah.Google)
	r.Get("/auth/google/url", ah.GoogleURL)

	home := &handler.HomeHandler{Accounts: d.Accounts, Diaries: d.Diaries, Log: d.Log}
	r.Get("/Home", home.Summary)
	r.Post("/Home", home.Logout)

	dh := &handler.DiaryHandler{Diaries: d.Diaries, Log: d.Log}
	r.Get("/diary/{date}", dh.Read)
	r.Post("/diary/{date}", dh.Replace)
	r.Put("/diary/{date}", dh.Merge)

	return r
}
