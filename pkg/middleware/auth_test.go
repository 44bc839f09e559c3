package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/auth/token"
	"tripora/pkg/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testAuthenticator() (*Authenticator, *token.Service) {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	svc := token.NewService(testSecret, time.Hour)
	return NewAuthenticator(svc, log), svc
}

func protectedHandler(called *bool) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*called = true
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "no identity", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(identity.Email))
	}
}

func TestWrap_MissingHeader(t *testing.T) {
	auth, _ := testAuthenticator()
	called := false

	r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	w := httptest.NewRecorder()
	auth.Wrap(protectedHandler(&called))(w, r, nil)

	if called {
		t.Error("handler should not run without credentials")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["success"] != false {
		t.Error("expected success=false")
	}
}

func TestWrap_MalformedScheme(t *testing.T) {
	auth, svc := testAuthenticator()
	tok, _ := svc.Issue("u1", "a@b.c")

	tests := []struct {
		name   string
		header string
	}{
		{"wrong scheme", "Basic " + tok},
		{"no token", "Bearer "},
		{"bare token", tok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			r.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			auth.Wrap(protectedHandler(&called))(w, r, nil)

			if called {
				t.Error("handler should not run")
			}
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestWrap_InvalidOrExpiredToken(t *testing.T) {
	auth, _ := testAuthenticator()
	expiredSvc := token.NewService(testSecret, -time.Minute)
	expiredTok, _ := expiredSvc.Issue("u1", "a@b.c")
	foreignSvc := token.NewService("ffffffffffffffffffffffffffffffff", time.Hour)
	foreignTok, _ := foreignSvc.Issue("u1", "a@b.c")

	for _, tok := range []string{expiredTok, foreignTok, "garbage"} {
		called := false
		r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		r.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		auth.Wrap(protectedHandler(&called))(w, r, nil)

		if called {
			t.Error("handler should not run")
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	}
}

func TestWrap_ValidTokenAttachesIdentity(t *testing.T) {
	auth, svc := testAuthenticator()
	tok, err := svc.Issue("665f1e9cf4a3a9d1d4c2aa01", "admin@tripora.example")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	called := false
	r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	auth.Wrap(protectedHandler(&called))(w, r, nil)

	if !called {
		t.Fatal("handler should run with a valid token")
	}
	if got := w.Body.String(); got != "admin@tripora.example" {
		t.Errorf("identity email = %q", got)
	}
}
