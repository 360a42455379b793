// @title           Users and Items API
// @version         1.0.0
// @description     A simple API with CRUD operations for users and items

// @host      localhost:3000
// @BasePath  /
// @schemes http
//
// Package main содержит точку входа HTTP-сервера users/items API.
//
// Пакет отвечает за инициализацию и жизненный цикл сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации из ./configs/server.yaml (без файла работают дефолты, порт 3000);
//   - создание in-memory репозиториев, сервисов, хендлеров и роутера;
//   - запуск HTTP(S)-сервера с заданными таймаутами;
//   - корректное (graceful) завершение по SIGINT, SIGTERM, SIGQUIT.
//
// Документация API описана в пакете swagger/docs и отдаётся swagger-ui по /api-docs.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-users-items-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/shared/logger"
)

func main() {
	// .env необязателен
	envErr := godotenv.Load()

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		logger.New(logger.Options{}).Sugar().Fatal(err)
	}

	httpLogger := logger.New(cfg.LoggerOptions())
	defer httpLogger.Sync()
	sugar := httpLogger.Sugar()

	if envErr != nil {
		sugar.Debugf("no .env file loaded, error: %v", envErr)
	}

	// хранилища живут только в памяти процесса
	repos := service.Repositories{
		Users: repository.NewUsersRepository(),
		Items: repository.NewItemsRepository(
			repository.WithDefaultCategory(cfg.Items.DefaultCategory),
		),
	}
	svc := service.NewServices(repos)
	handler := api.NewHandler(svc, httpLogger)

	routerOpts := h.Options{DocsPath: cfg.Docs.Path}
	if cfg.Security.RateLimit.Enabled {
		routerOpts.RateLimiter = middleware.NewRateLimiter(
			cfg.Security.RateLimit.RPS,
			cfg.Security.RateLimit.Burst,
		)
	}
	router := h.NewRouter(handler, routerOpts)

	addr := cfg.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// слушаем заранее, чтобы логировать уже занятый адрес
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		sugar.Fatalf("listen %s: %v", addr, err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheme := "http"
		if cfg.TLS.Enabled {
			scheme = "https"
		}
		base := scheme + "://" + displayHost(ln.Addr())
		sugar.Infof("server started on %s", base)
		sugar.Infof("api docs available at %s%s", base, cfg.Docs.Path)

		var serveErr error
		if cfg.TLS.Enabled {
			serveErr = server.ServeTLS(ln, cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			serveErr = server.Serve(ln)
		}
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

// displayHost превращает ":3000" / "[::]:3000" в "localhost:3000" для логов.
func displayHost(a net.Addr) string {
	host, port, err := net.SplitHostPort(a.String())
	if err != nil {
		return a.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
