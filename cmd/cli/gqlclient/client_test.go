package gqlclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDo_SendsAuthHeaderAndDecodesData(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"me":{"id":"1","username":"alice"}}}`))
	}))
	defer srv.Close()
	t.Setenv("MOVIEQL_API_URL", srv.URL)

	var out struct {
		Me struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"me"`
	}
	if err := Do("sometoken", `query { me { id username } }`, nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer sometoken" {
		t.Errorf("Authorization header: got %q", gotAuth)
	}
	if out.Me.Username != "alice" {
		t.Errorf("unexpected payload: %+v", out)
	}
}

func TestDo_SurfacesGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null,"errors":[{"message":"not authorized"}]}`))
	}))
	defer srv.Close()
	t.Setenv("MOVIEQL_API_URL", srv.URL)

	err := Do("", `mutation { deleteMovie(id: "1") { id } }`, nil, nil)
	if err == nil || err.Error() != "not authorized" {
		t.Errorf("expected graphql error to surface, got: %v", err)
	}
}

func TestDo_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"too many requests"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()
	t.Setenv("MOVIEQL_API_URL", srv.URL)

	if err := Do("", `query { movies { id } }`, nil, nil); err == nil {
		t.Error("expected error for non-200 status")
	}
}
