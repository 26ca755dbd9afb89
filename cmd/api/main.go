package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/volley-draw/internal/app"
	"github.com/aidar/volley-draw/internal/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Не удалось создать приложение: %v", err)
	}

	// Подключаем хранилище (memory, postgres или sqlite) и настраиваем роутинг
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Initialize(ctx); err != nil {
		log.Fatalf("Не удалось инициализировать приложение: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	log.Printf("Сервер запущен на %s:%s (хранилище: %s)", cfg.Server.Host, cfg.Server.Port, cfg.Storage.Driver)

	// Ждем сигнал остановки или падение сервера
	select {
	case <-ctx.Done():
		log.Println("Остановка сервера...")
	case err, ok := <-serverErr:
		if ok {
			log.Printf("Ошибка сервера: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Printf("Не удалось корректно остановить сервер: %v", err)
		os.Exit(1)
	}

	log.Println("Сервер остановлен")
}
