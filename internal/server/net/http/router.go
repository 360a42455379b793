// Package http реализует маршрутизацию HTTP-слоя сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов и восстановление после паник;
//   - подключение swagger-ui с документацией API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/middleware"

	_ "github.com/IvanChernomyrdin/go-users-items-api/swagger/docs"
)

// DefaultDocsPath путь swagger-ui по умолчанию.
const DefaultDocsPath = "/api-docs"

// Options дополнительные настройки роутера.
//
// DocsPath — где монтируется swagger-ui (пусто = /api-docs),
// RateLimiter — если задан, ограничивает запросы к /api по IP.
type Options struct {
	DocsPath    string
	RateLimiter *middleware.RateLimiter
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования и Recoverer для всех запросов;
//   - CRUD эндпоинты под /api/users и /api/items;
//   - swagger-ui под DocsPath (DocsPath/doc.json — сама схема).
func NewRouter(h *api.Handler, opts Options) http.Handler {
	docsPath := opts.DocsPath
	if docsPath == "" {
		docsPath = DefaultDocsPath
	}

	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	// паника в хендлере -> 500, процесс живёт
	r.Use(chimw.Recoverer)

	// добавляем swagger
	r.Get(docsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(docsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(docsPath+"/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Middleware())
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
			r.Put("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.CreateItem)
			r.Get("/", h.ListItems) // ?category= фильтр
			r.Get("/{id}", h.GetItem)
			r.Put("/{id}", h.UpdateItem)
			r.Delete("/{id}", h.DeleteItem)
		})
	})

	return r
}
