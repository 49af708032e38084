package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"helperbee_backend/internal/app"
	"helperbee_backend/internal/config"
	"helperbee_backend/internal/identity"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/payments"
	"helperbee_backend/internal/storage"
)

const testIdentitySecret = "integration-test-secret"

// FakeGateway hands out deterministic order ids without network calls.
type FakeGateway struct {
	counter int64
}

func (g *FakeGateway) CreateOrder(ctx context.Context, req payments.OrderRequest) (*payments.Order, error) {
	n := atomic.AddInt64(&g.counter, 1)
	return &payments.Order{
		ID:       fmt.Sprintf("order_test_%d", n),
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}

// FakeEmailProvider records outgoing mail instead of sending it.
type FakeEmailProvider struct {
	mu   sync.Mutex
	Sent []SentEmail
}

type SentEmail struct {
	To      string
	Subject string
	Body    string
}

func (p *FakeEmailProvider) Send(ctx context.Context, to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, SentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (p *FakeEmailProvider) LastTo(to string) *SentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.Sent) - 1; i >= 0; i-- {
		if p.Sent[i].To == to {
			return &p.Sent[i]
		}
	}
	return nil
}

// TestServer is the shared application instance for integration tests.
type TestServer struct {
	DB       *gorm.DB
	Server   *httptest.Server
	Verifier *identity.JWTVerifier
	Gateway  *FakeGateway
	Emails   *FakeEmailProvider
	Config   *config.Config
}

var (
	serverOnce sync.Once
	server     *TestServer
	serverErr  error
)

// GetTestServer returns the shared server, skipping the test when no
// test database is configured.
func GetTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := TestDatabaseURL()
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	serverOnce.Do(func() {
		db, err := SetupTestDB(dsn)
		if err != nil {
			serverErr = err
			return
		}

		cfg := &config.Config{}
		cfg.Server.Env = "test"
		cfg.Database.DSN = dsn
		cfg.Identity.Secret = testIdentitySecret
		cfg.Identity.TTL = 60
		cfg.Payments.KeyID = "key_test"
		cfg.Payments.KeySecret = "secret_test"
		uploadDir, err := os.MkdirTemp("", "helperbee-uploads-*")
		if err != nil {
			serverErr = err
			return
		}
		cfg.Storage.Type = "local"
		cfg.Storage.BasePath = uploadDir
		cfg.Storage.BaseURL = "/api/v1/files"

		gateway := &FakeGateway{}
		emails := &FakeEmailProvider{}
		verifier := identity.NewJWTVerifier(cfg.Identity.Secret, time.Hour)

		store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			serverErr = err
			return
		}

		router := app.SetupRouter(cfg, db, gateway, emails, verifier, store)

		server = &TestServer{
			DB:       db,
			Server:   httptest.NewServer(router),
			Verifier: verifier,
			Gateway:  gateway,
			Emails:   emails,
			Config:   cfg,
		}
	})

	if serverErr != nil {
		t.Fatalf("failed to start test server: %v", serverErr)
	}

	if err := ClearTables(server.DB); err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
	return server
}

// CreateUser inserts a verified account and returns it with a valid token.
func (ts *TestServer) CreateUser(t *testing.T, id, email string, role models.UserRole) (*models.User, string) {
	t.Helper()

	user := &models.User{
		ID:         id,
		Email:      email,
		Name:       "Test " + id,
		Role:       role,
		IsVerified: true,
	}
	if err := ts.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := ts.Verifier.Issue(id, email)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return user, token
}

// CreateHirer inserts a verified hirer and returns a token for it.
func (ts *TestServer) CreateHirer(t *testing.T, id string) (*models.User, string) {
	return ts.CreateUser(t, id, id+"@example.com", models.RoleHirer)
}

// CreateWorker inserts a verified worker and returns a token for it.
func (ts *TestServer) CreateWorker(t *testing.T, id string) (*models.User, string) {
	return ts.CreateUser(t, id, id+"@example.com", models.RoleWorker)
}

// Do performs a JSON request against the test server. A non-nil out is
// filled from the response body.
func (ts *TestServer) Do(t *testing.T, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("failed to decode response %q: %v", string(data), err)
		}
	}
	return resp.StatusCode
}
