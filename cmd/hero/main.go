package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/ugaemi/chatbase-hero/internal/audio"
	"github.com/ugaemi/chatbase-hero/internal/config"
	"github.com/ugaemi/chatbase-hero/internal/desktop"
	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/handler"
	"github.com/ugaemi/chatbase-hero/internal/leaderboard"
	"github.com/ugaemi/chatbase-hero/internal/overlay"
	"github.com/ugaemi/chatbase-hero/internal/session"
	"github.com/ugaemi/chatbase-hero/internal/tui"
	"github.com/ugaemi/chatbase-hero/internal/ws"
)

const (
	shutdownTimeout = 5 * time.Second

	// The terminal frontend owns stdout.
	terminalLogFile = "hero.log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}

	cfg := config.Load()
	closeLog := setupLogger(cfg)
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("hero failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Load(ctx)
	if err != nil {
		slog.Warn("starting with an empty leaderboard", "error", err)
	}
	board := leaderboard.NewBoard(entries)

	hub := ws.NewHub()
	remote := handler.NewRemoteInput()
	router := handler.NewRouter(remote)
	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	feed := handler.NewFeed(hub, handler.DefaultFrameEvery)
	opts := []session.Option{
		session.WithRenderer(feed),
		session.WithListener(feed),
	}

	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			slog.Warn("audio disabled", "error", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, session.WithListener(sm))
		}
	}

	var term *tui.Terminal
	if cfg.Frontend == config.FrontendTerminal {
		term, err = tui.New()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer term.Close()
		opts = append(opts, session.WithRenderer(term))
	}

	sess := session.New(game.NewState(stateOptions(cfg)...), board, store, opts...)
	feed.WithLeaderboard(sess.Leaderboard)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error { return sess.SaveLoop(gctx) })
	if cfg.OverlayAddr != "" {
		g.Go(func() error {
			return serveOverlay(gctx, cfg, sess, hub)
		})
	}

	slog.Info("hero starting", "frontend", cfg.Frontend, "overlay", cfg.OverlayAddr, "leaderboard", board.Len())

	switch cfg.Frontend {
	case config.FrontendTerminal:
		g.Go(func() error { return term.Run(gctx) })
		g.Go(func() error { return sess.Run(gctx, session.Combine(term, remote)) })
	case config.FrontendHeadless:
		g.Go(func() error { return sess.Run(gctx, remote) })
	default:
		// ebiten must own the main goroutine.
		win := desktop.New(sess, remote)
		if err := win.Run(gctx); err != nil {
			cancel()
			g.Wait()
			return err
		}
		cancel()
	}

	err = g.Wait()
	if errors.Is(err, tui.ErrQuit) {
		err = nil
	}
	slog.Info("hero stopped")
	return err
}

func stateOptions(cfg *config.Config) []game.Option {
	if cfg.Seed == 0 {
		return nil
	}
	return []game.Option{game.WithRand(rand.New(rand.NewSource(cfg.Seed)))}
}

// openStore selects PostgreSQL when DATABASE_URL is set and a local file
// otherwise.
func openStore(ctx context.Context, cfg *config.Config) (leaderboard.Store, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("using leaderboard file", "path", cfg.LeaderboardPath)
		return leaderboard.NewFileStore(cfg.LeaderboardPath), nil
	}

	store, err := leaderboard.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect leaderboard database: %w", err)
	}
	slog.Info("using leaderboard database")
	return store, nil
}

func serveOverlay(ctx context.Context, cfg *config.Config, sess *session.Session, hub *ws.Hub) error {
	srv := &http.Server{
		Addr: cfg.OverlayAddr,
		Handler: overlay.NewRouter(overlay.RouterConfig{
			Source:      sess,
			Hub:         hub,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("overlay shutdown failed", "error", err)
		}
	}()

	slog.Info("overlay listening", "addr", cfg.OverlayAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("overlay server: %w", err)
	}
	return nil
}

// setupLogger installs the default slog logger and returns a function that
// closes its log file, if any.
func setupLogger(cfg *config.Config) func() {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	path := cfg.LogFile
	if path == "" && cfg.Frontend == config.FrontendTerminal {
		path = terminalLogFile
	}

	var out io.Writer = os.Stdout
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", path, err)
			if cfg.Frontend == config.FrontendTerminal {
				out = io.Discard
			}
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		h = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(h))
	return closeFn
}
