package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mem "animal-sounds/internal/adapters/storage/memory"
	"animal-sounds/internal/platform/httpclient"
	"animal-sounds/internal/router"

	"github.com/rs/zerolog"
)

func TestClient_CreateThenList(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Repo: mem.NewAnimalsRepo(), Logger: zerolog.Nop()}))
	defer ts.Close()

	c, err := httpclient.New(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx := context.Background()

	if err := c.Create(ctx); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Type != "Cat" || items[1].Type != "Dog" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].Sound != "'1' 'Cat2' Cat sound" {
		t.Fatalf("unexpected cat sound %q", items[0].Sound)
	}
}

func TestClient_GetSound_ServerError(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Repo: mem.NewAnimalsRepo(), Logger: zerolog.Nop()}))
	defer ts.Close()

	c, err := httpclient.New(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.GetSound(context.Background())
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", httpErr.StatusCode)
	}
	if httpErr.RequestID == "" {
		t.Fatalf("expected request id in error")
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "localhost:8080", "not a url"} {
		if _, err := httpclient.New(u, 0); err == nil {
			t.Fatalf("%q: expected error", u)
		}
	}
}
