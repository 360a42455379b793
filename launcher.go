// launcher собирает crudctl, поднимает сервер и ждёт, пока он ответит на /api-docs.
//
//	go run launcher.go
//
// Ctrl+C останавливает сервер.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"
)

const (
	baseURL      = "http://localhost:3000"
	readyTimeout = 30 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := "crudctl"
	if runtime.GOOS == "windows" {
		client += ".exe"
	}

	if err := goTool(ctx, "build", "-o", client, "./cmd/crudctl"); err != nil {
		fmt.Fprintf(os.Stderr, "build crudctl: %v\n", err)
		os.Exit(1)
	}

	// CommandContext убьёт сервер по Ctrl+C
	server := exec.CommandContext(ctx, "go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start server: %v\n", err)
		os.Exit(1)
	}

	if err := waitReady(ctx, baseURL+"/api-docs/doc.json"); err != nil {
		fmt.Fprintf(os.Stderr, "server is not ready: %v\n", err)
		_ = server.Process.Kill()
		os.Exit(1)
	}

	fmt.Printf("ready: %s (docs %s/api-docs)\n", baseURL, baseURL)
	fmt.Printf("try:   ./%s users create --name Ann --email ann@x.com\n", client)

	if err := server.Wait(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}

func goTool(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// waitReady опрашивает url, пока не получит 200 или не истечёт readyTimeout.
func waitReady(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if res, err := http.DefaultClient.Do(req); err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}
