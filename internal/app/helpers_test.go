package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aidar/volley-draw/internal/app"
	"github.com/aidar/volley-draw/internal/config"
)

// TestEnvironment содержит запущенное приложение и адрес тестового сервера
type TestEnvironment struct {
	App     *app.App
	Server  *httptest.Server
	BaseURL string
}

// Тестовые структуры данных, соответствующие API
type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type Team struct {
	Name    string          `json:"name"`
	Colors  json.RawMessage `json:"colors"`
	Setter  *Player         `json:"setter"`
	Libero  *Player         `json:"libero"`
	Players []*Player       `json:"players"`
}

type DrawResponse struct {
	Teams []Team `json:"teams"`
}

type Session struct {
	ID            int64     `json:"id"`
	GameType      string    `json:"gameType"`
	NumberOfTeams int       `json:"numberOfTeams"`
	Teams         []Team    `json:"teams"`
	CreatedAt     time.Time `json:"createdAt"`
}

type RosterStats struct {
	Total   int `json:"total"`
	Formats map[string]struct {
		MaxTeams int  `json:"maxTeams"`
		CanDraw  bool `json:"canDraw"`
	} `json:"formats"`
}

type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details *struct {
			Kind      string `json:"kind"`
			Required  int    `json:"required"`
			Available int    `json:"available"`
		} `json:"details"`
	} `json:"error"`
}

func testConfig(driver string) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		Storage: config.StorageConfig{Driver: driver},
		Log:     config.LogConfig{Level: "error"},
	}
}

// SetupTestEnvironment создает приложение и поднимает его обработчик на httptest сервере
func SetupTestEnvironment(t *testing.T, cfg *config.Config) *TestEnvironment {
	t.Helper()

	application, err := app.New(cfg)
	require.NoError(t, err, "Failed to create application")
	require.NoError(t, application.Initialize(context.Background()), "Failed to initialize application")

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = application.Shutdown(ctx)
	})

	return &TestEnvironment{App: application, Server: srv, BaseURL: srv.URL}
}

// MakeRequest выполняет HTTP запрос к тестовому серверу
func (te *TestEnvironment) MakeRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, te.BaseURL+path, reader)
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", "application/json")

	resp, err := te.Server.Client().Do(req)
	require.NoError(t, err, "Failed to make request")
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// decode читает JSON тело ответа
func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// registerRoster регистрирует игроков по позициям
func (te *TestEnvironment) registerRoster(t *testing.T, setters, liberos, generics int) []Player {
	t.Helper()

	var players []Player
	add := func(n int, position string) {
		for i := 0; i < n; i++ {
			resp := te.MakeRequest(t, http.MethodPost, "/api/players", map[string]string{
				"name":     position + "-" + string(rune('a'+i)),
				"position": position,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			players = append(players, decode[Player](t, resp))
		}
	}
	add(setters, "setter")
	add(liberos, "libero")
	add(generics, "generic")

	return players
}
