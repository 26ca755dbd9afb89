package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/volley-draw/internal/config"
	"github.com/aidar/volley-draw/internal/handler"
	"github.com/aidar/volley-draw/internal/metrics"
	"github.com/aidar/volley-draw/internal/middleware"
	"github.com/aidar/volley-draw/internal/repository"
	"github.com/aidar/volley-draw/internal/repository/memory"
	"github.com/aidar/volley-draw/internal/repository/postgres"
	"github.com/aidar/volley-draw/internal/repository/sqlite"
	"github.com/aidar/volley-draw/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	sqlDB  *sql.DB
	server *http.Server
	logger *slog.Logger

	players  repository.PlayerRepository
	sessions repository.SessionRepository
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаем хранилище, выбранное в конфигурации
	if err := a.setupStorage(ctx); err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "storage", a.config.Storage.Driver)
	return nil
}

// setupStorage создает репозитории игроков и сессий
func (a *App) setupStorage(ctx context.Context) error {
	switch a.config.Storage.Driver {
	case config.StoragePostgres:
		if err := a.connectDB(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.players = postgres.NewPlayerRepository(a.db)
		a.sessions = postgres.NewSessionRepository(a.db)
	case config.StorageSQLite:
		db, err := sqlite.Open(a.config.SQLite.Path)
		if err != nil {
			return err
		}
		a.sqlDB = db
		a.players = sqlite.NewPlayerRepository(db)
		a.sessions = sqlite.NewSessionRepository(db)
		a.logger.Info("Opened SQLite database", "path", a.config.SQLite.Path)
	case config.StorageMemory, "":
		a.players = memory.NewPlayerRepository()
		a.sessions = memory.NewSessionRepository()
	default:
		return fmt.Errorf("unsupported storage driver %q", a.config.Storage.Driver)
	}
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой сервисов (бизнес-логика)
	playerService := service.NewPlayerService(a.players)
	drawService := service.NewDrawService(a.players, service.NewTeamAssigner(), a.logger)
	sessionService := service.NewSessionService(a.sessions)
	statsService := service.NewStatsService(a.players)

	// Инициализируем HTTP обработчики
	playerHandler := handler.NewPlayerHandler(playerService, statsService)
	drawHandler := handler.NewDrawHandler(drawService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// Игроки
		r.Get("/players", playerHandler.List)
		r.Post("/players", playerHandler.Create)
		r.Get("/players/stats", playerHandler.Stats)
		r.Delete("/players/{id}", playerHandler.Delete)

		// Жеребьевка
		r.Post("/sort-teams", drawHandler.Draw)

		// История жеребьевок
		r.Get("/game-sessions", sessionHandler.List)
		r.Post("/game-sessions", sessionHandler.Create)
		r.Get("/game-sessions/{id}", sessionHandler.Get)
		r.Delete("/game-sessions/{id}", sessionHandler.Delete)
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик приложения
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}
	if a.sqlDB != nil {
		if err := a.sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close sqlite database: %w", err)
		}
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
