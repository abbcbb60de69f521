package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const equityHoursJSON = `{
  "equity": {
    "EQ": {
      "date": "2024-03-05",
      "marketType": "EQUITY",
      "exchange": "NULL",
      "category": "NULL",
      "product": "EQ",
      "productName": "equity",
      "isOpen": true,
      "sessionHours": {
        "preMarket": [{"start": "2024-03-05T07:00:00-05:00", "end": "2024-03-05T09:30:00-05:00"}],
        "regularMarket": [{"start": "2024-03-05T09:30:00-05:00", "end": "2024-03-05T16:00:00-05:00"}],
        "postMarket": [{"start": "2024-03-05T16:00:00-05:00", "end": "2024-03-05T20:00:00-05:00"}]
      }
    }
  }
}`

func TestGetMarketHours(t *testing.T) {
	t.Run("public request with date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/marketdata/EQUITY/hours" {
				t.Errorf("path = %q, want %q", r.URL.Path, "/marketdata/EQUITY/hours")
			}
			q := r.URL.Query()
			if q.Get("apikey") != "CLIENT" {
				t.Errorf("apikey = %q, want %q", q.Get("apikey"), "CLIENT")
			}
			if q.Get("date") != "2024-03-05" {
				t.Errorf("date = %q, want %q", q.Get("date"), "2024-03-05")
			}
			if r.Header.Get("Authorization") != "" {
				t.Errorf("Authorization header should be empty, got %q", r.Header.Get("Authorization"))
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(equityHoursJSON))
		}))
		defer server.Close()

		date := "2024-03-05"
		c := NewClient(server.URL)
		resp, err := c.GetMarketHours(context.Background(), "", "CLIENT", "EQUITY", &date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		eq, ok := resp["equity"]["EQ"]
		if !ok {
			t.Fatalf("missing equity/EQ in %v", resp)
		}
		if !eq.IsOpen {
			t.Error("IsOpen = false, want true")
		}
		if eq.MarketType != "EQUITY" {
			t.Errorf("MarketType = %q, want %q", eq.MarketType, "EQUITY")
		}
		regular := eq.SessionHours["regularMarket"]
		if len(regular) != 1 {
			t.Fatalf("len(regularMarket) = %d, want 1", len(regular))
		}
		if got := regular[0].End.Sub(regular[0].Start); got != 390*time.Minute {
			t.Errorf("regular session length = %v, want %v", got, 390*time.Minute)
		}
	})

	t.Run("bearer request without date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if _, ok := q["date"]; ok {
				t.Errorf("date should be omitted, got %q", q.Get("date"))
			}
			if _, ok := q["apikey"]; ok {
				t.Errorf("apikey should be omitted, got %q", q.Get("apikey"))
			}
			if r.Header.Get("Authorization") != "Bearer access" {
				t.Errorf("Authorization header = %q, want %q", r.Header.Get("Authorization"), "Bearer access")
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"option": {}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		resp, err := c.GetMarketHours(context.Background(), "access", "", "OPTION", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := resp["option"]; !ok {
			t.Errorf("missing option key in %v", resp)
		}
	})

	t.Run("conflicting auth sends nothing", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.GetMarketHours(context.Background(), "access", "CLIENT", "EQUITY", nil)
		if !errors.Is(err, ErrConflictingAuth) {
			t.Fatalf("err = %v, want ErrConflictingAuth", err)
		}
		if attempts != 0 {
			t.Errorf("attempts = %d, want 0", attempts)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.GetMarketHours(context.Background(), "", "CLIENT", "EQUITY", nil)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("err = %v, want ErrMalformedResponse", err)
		}
	})

	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Not Authorized"}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.GetMarketHours(context.Background(), "expired", "", "EQUITY", nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
		}
	})
}

func TestGetMultiMarketHours(t *testing.T) {
	t.Run("joins markets", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/marketdata/hours" {
				t.Errorf("path = %q, want %q", r.URL.Path, "/marketdata/hours")
			}
			q := r.URL.Query()
			if q.Get("markets") != "EQUITY,OPTION" {
				t.Errorf("markets = %q, want %q", q.Get("markets"), "EQUITY,OPTION")
			}
			if _, ok := q["date"]; ok {
				t.Errorf("date should be omitted, got %q", q.Get("date"))
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"equity": {"EQ": {"isOpen": false}}, "option": {"EQO": {"isOpen": false}}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		resp, err := c.GetMultiMarketHours(context.Background(), "", "CLIENT", []string{"EQUITY", "OPTION"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp) != 2 {
			t.Errorf("len(resp) = %d, want 2", len(resp))
		}
		if resp["equity"]["EQ"].SessionHours != nil {
			t.Error("closed market should have no session hours")
		}
	})

	t.Run("missing auth", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1")
		_, err := c.GetMultiMarketHours(context.Background(), "", "", []string{"BOND"}, nil)
		if !errors.Is(err, ErrMissingAuth) {
			t.Fatalf("err = %v, want ErrMissingAuth", err)
		}
	})
}
