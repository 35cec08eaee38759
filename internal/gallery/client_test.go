package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("default url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("127.0.0.1:7488")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "127.0.0.1:7488" || u.Path != "/" {
		t.Fatalf("url = %q, want http://127.0.0.1:7488/", u.String())
	}

	u, err = parseBaseURL("https://example.com/api/v1?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api/v1/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_MissingHostFails(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	catalog := []Product{
		{ID: "1", Name: "Vase", Brand: "A", Price: 10},
		{ID: "2", Name: "Bowl", Brand: "B", Price: 20, Comments: []Comment{{Author: "x", Content: "nice", Rating: 4}}},
	}

	var gotUserAgent string
	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotPaths = append(gotPaths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/Assignment":
			_ = json.NewEncoder(w).Encode(catalog)
		case "/api/Assignment/2":
			_ = json.NewEncoder(w).Encode(catalog[1:])
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	products, err := c.FetchProducts(ctx)
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 2 || products[0].Name != "Vase" || products[1].Brand != "B" {
		t.Fatalf("FetchProducts = %#v, want the two catalog products", products)
	}

	byID, err := c.FetchProduct(ctx, "2")
	if err != nil {
		t.Fatalf("FetchProduct returned error: %v", err)
	}
	if len(byID) != 1 || byID[0].ID != "2" || len(byID[0].Comments) != 1 {
		t.Fatalf("FetchProduct = %#v, want product 2 with its comment", byID)
	}

	if len(gotPaths) != 2 || gotPaths[0] != "/api/Assignment" || gotPaths[1] != "/api/Assignment/2" {
		t.Fatalf("paths = %v, want [/api/Assignment /api/Assignment/2]", gotPaths)
	}
	if !strings.HasPrefix(gotUserAgent, "artshelf/") {
		t.Fatalf("User-Agent = %q, want artshelf/*", gotUserAgent)
	}
}

func TestClient_FetchProductRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchProduct(context.Background(), "  "); err == nil {
		t.Fatalf("FetchProduct returned nil error, want error")
	}
}

func TestClient_NonOKStatusAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Assignment":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[{not-json"))
		case "/Assignment/created":
			// Anything but 200 is a failure, even other 2xx codes.
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("[]"))
		default:
			http.Error(w, `"Not found"`, http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchProducts(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchProducts error = %v, want decode response error", err)
	}

	_, err = c.FetchProduct(context.Background(), "created")
	if !errors.Is(err, ErrUnexpectedStatus) || !strings.Contains(err.Error(), "201") {
		t.Fatalf("FetchProduct error = %v, want unexpected status 201", err)
	}

	_, err = c.FetchProduct(context.Background(), "missing")
	if !errors.Is(err, ErrUnexpectedStatus) || !strings.Contains(err.Error(), "returned status 404") {
		t.Fatalf("FetchProduct error = %v, want status 404 error", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchProducts(context.Background()); err == nil {
		t.Fatalf("FetchProducts on nil client returned nil error")
	}
	if c.BaseURL() != "" {
		t.Fatalf("BaseURL on nil client = %q, want empty", c.BaseURL())
	}
}
