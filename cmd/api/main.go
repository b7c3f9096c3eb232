package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"go-inmem-todo/backend/internal/config"
	"go-inmem-todo/backend/internal/logging"
	"go-inmem-todo/backend/internal/routes"
	"go-inmem-todo/backend/internal/services"
	"go-inmem-todo/backend/internal/todo"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr); err != nil {
		log.Error("server stopped", "err", err)
		stop()
		os.Exit(1)
	}
}

// run はサーバーを起動し、ctx がキャンセルされるまで待ちます。
// 標準出力には起動時の1行だけを書き込みます。
func run(ctx context.Context, stdout, stderr io.Writer) error {
	envErr := config.LoadDotEnv()
	cfg, warnings := config.FromEnv()

	logger := logging.New(stderr, logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Prefix:    "todo",
		Timestamp: true,
	})
	if envErr != nil {
		logger.Warn("could not load .env", "err", envErr)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	gin.SetMode(cfg.GinMode)
	gin.DefaultWriter = stderr
	gin.DefaultErrorWriter = stderr

	store := todo.NewStore()
	todoService := services.NewTodoService(store, services.TitlePolicy{
		Validate:  cfg.ValidateTitles,
		MaxLength: cfg.MaxTitleLength,
	}, logger)
	router := routes.SetupRouter(todoService, logger)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(stdout, "Server running at http://%s\n", ln.Addr())
	logger.Info("listening", "addr", ln.Addr().String(), "validate_titles", cfg.ValidateTitles)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "todos", store.Len())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
