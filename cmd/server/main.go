package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/config"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/db"
	dbsqlc "github.com/drvendasdev/pure-project-groundwork-sub000/internal/db/sqlc"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/handlers"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/logger"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/media"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/message"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/server"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/storage"
)

func provideConfig() (config.Config, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return logger.L
}

func provideDBConn(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			conn.Close()
			return nil
		},
	})
	return conn, nil
}

func provideDBQueries(conn *pgxpool.Pool) *dbsqlc.Queries {
	return dbsqlc.New(conn)
}

func provideObjectStore(log *slog.Logger, cfg config.Config) (storage.ObjectStore, error) {
	switch cfg.Storage.Provider {
	case "supabase":
		return storage.NewSupabaseStore(log, cfg.Storage.BaseURL, cfg.Storage.Bucket, cfg.Storage.ServiceKey), nil
	case "fs", "":
		return storage.NewFSStore(cfg.Storage.Root, cfg.Storage.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}
}

func provideMessageService(log *slog.Logger, queries *dbsqlc.Queries) *message.Service {
	return message.NewService(log, queries)
}

func provideServer(log *slog.Logger, cfg config.Config, handlerGroup serverHandlers) *server.Server {
	return server.NewServer(log, cfg.Server.Addr, handlerGroup.Handlers...)
}

type serverHandlers struct {
	fx.In

	Handlers []server.Handler `group:"server_handlers"`
}

func provideServerHandler(fn any) any {
	return fx.Annotate(
		fn,
		fx.As(new(server.Handler)),
		fx.ResultTags(`group:"server_handlers"`),
	)
}

func startServer(lc fx.Lifecycle, log *slog.Logger, srv *server.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", slog.String("error", err.Error()))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Stop(ctx)
		},
	})
}

func main() {
	fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,

			provideDBConn,
			provideDBQueries,
			provideObjectStore,

			media.NewService,
			provideMessageService,

			provideServerHandler(handlers.NewPingHandler),
			provideServerHandler(handlers.NewMediaProcessorHandler),

			provideServer,
		),
		fx.Invoke(
			startServer,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
	).Run()
}
