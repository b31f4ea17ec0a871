package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateRepo(t *testing.T) {
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/repos" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotBody, _ = body["name"].(string)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"full_name": "alice/dotfiles"}`))
	}))
	defer srv.Close()

	c := New("tok123", WithAPIURL(srv.URL))
	if err := c.CreateRepo(context.Background(), "dotfiles", true); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "token tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody != "dotfiles" {
		t.Errorf("body name = %q", gotBody)
	}
}

func TestCreateRepoAlreadyExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Repository creation failed.", "errors": [{"message": "name already exists on this account"}]}`))
	}))
	defer srv.Close()

	c := New("tok123", WithAPIURL(srv.URL))
	err := c.CreateRepo(context.Background(), "dotfiles", false)
	if !errors.Is(err, ErrRepoExists) {
		t.Fatalf("err = %v, want ErrRepoExists", err)
	}
}

func TestDeleteRepo(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New("tok123", WithAPIURL(srv.URL))
	if err := c.DeleteRepo(context.Background(), "alice", "dotfiles"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/repos/alice/dotfiles" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestRenameRepo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/repos/alice/dotfiles" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "dotfiles-new" {
			t.Errorf("body name = %q", body["name"])
		}
		w.Write([]byte(`{"name": "dotfiles-new"}`))
	}))
	defer srv.Close()

	c := New("tok123", WithAPIURL(srv.URL))
	if err := c.RenameRepo(context.Background(), "alice", "dotfiles", "dotfiles-new"); err != nil {
		t.Fatal(err)
	}
}
