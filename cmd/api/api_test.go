package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelechio/movieql/internal/config"
)

// TestAPI_SignupThenListMovies is an integration test: it builds the full
// router with a sqlmock-backed DB, signs up to get a JWT, then runs the
// movies query with the token attached.
func TestAPI_SignupThenListMovies(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	// Signup: INSERT into users
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("integration", "integration@example.com", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	// movies query: default page, sorted by id
	mock.ExpectQuery(`SELECT \* FROM "movies" ORDER BY id asc LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_name", "description", "user_id"}).
			AddRow(1, "Inception", "a heist in dreams", 1))

	cfg := config.Config{
		JWTSecret:      "test-secret-for-integration",
		JWTExpireHours: 24,
		BcryptCost:     10,
	}
	router, err := newRouter(gdb, cfg)
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	srv := httptest.NewServer(router)
	defer srv.Close()

	// 1) Signup
	signupBody, _ := json.Marshal(map[string]interface{}{
		"query": `mutation Signup($data: SignupInput!) { signup(data: $data) { token user { id username } } }`,
		"variables": map[string]interface{}{
			"data": map[string]interface{}{
				"username": "integration",
				"email":    "integration@example.com",
				"password": "s3cret",
			},
		},
	})
	signupResp, err := http.Post(srv.URL+"/graphql", "application/json", bytes.NewReader(signupBody))
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	defer signupResp.Body.Close()
	if signupResp.StatusCode != http.StatusOK {
		t.Fatalf("signup status: got %d, want 200", signupResp.StatusCode)
	}
	var signupOut struct {
		Data struct {
			Signup struct {
				Token string `json:"token"`
				User  struct {
					ID       string `json:"id"`
					Username string `json:"username"`
				} `json:"user"`
			} `json:"signup"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(signupResp.Body).Decode(&signupOut); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if len(signupOut.Errors) > 0 {
		t.Fatalf("signup errors: %+v", signupOut.Errors)
	}
	if signupOut.Data.Signup.Token == "" || signupOut.Data.Signup.User.Username != "integration" {
		t.Fatalf("unexpected signup payload: %+v", signupOut.Data.Signup)
	}

	// 2) movies query with Bearer token
	moviesBody, _ := json.Marshal(map[string]interface{}{
		"query": `query { movies { id movieName description } }`,
	})
	req, _ := http.NewRequest("POST", srv.URL+"/graphql", bytes.NewReader(moviesBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signupOut.Data.Signup.Token)
	moviesResp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("movies request: %v", err)
	}
	defer moviesResp.Body.Close()
	if moviesResp.StatusCode != http.StatusOK {
		t.Fatalf("movies status: got %d, want 200", moviesResp.StatusCode)
	}
	var moviesOut struct {
		Data struct {
			Movies []struct {
				ID        string `json:"id"`
				MovieName string `json:"movieName"`
			} `json:"movies"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(moviesResp.Body).Decode(&moviesOut); err != nil {
		t.Fatalf("decode movies response: %v", err)
	}
	if len(moviesOut.Errors) > 0 {
		t.Fatalf("movies errors: %+v", moviesOut.Errors)
	}
	if len(moviesOut.Data.Movies) != 1 || moviesOut.Data.Movies[0].MovieName != "Inception" {
		t.Errorf("unexpected movies: %+v", moviesOut.Data.Movies)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	router, err := newRouter(gdb, config.Config{JWTSecret: "s", JWTExpireHours: 1, BcryptCost: 10})
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	srv := httptest.NewServer(router)
	defer srv.Close()

	for _, path := range []string{"/health", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status: got %d, want 200", path, resp.StatusCode)
		}
	}
}
