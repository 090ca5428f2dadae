package auth_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"net/http/httptest"

	httpapi "github.com/aisleworks/doorkey/internal/auth/http"
	"github.com/aisleworks/doorkey/internal/auth/mail"
	"github.com/aisleworks/doorkey/internal/auth/service"
	"github.com/aisleworks/doorkey/internal/auth/store/drivers/sqlite"
	"github.com/aisleworks/doorkey/pkg/cryptox"
	"github.com/aisleworks/doorkey/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cryptox.SetPepperPath(filepath.Join(os.TempDir(), "doorkey-e2e-pepper"))
	os.Exit(m.Run())
}

var e2eSecret = []byte("e2e-secret-e2e-secret-e2e-secret!")

// capturedEmail is one notification handed to the capture notifier.
type capturedEmail struct {
	Kind      mail.Kind
	Recipient string
	Payload   mail.Payload
}

// captureNotifier records outbound emails so tests can pull codes and reset
// links out of them.
type captureNotifier struct {
	mu     sync.Mutex
	emails []capturedEmail
}

func (n *captureNotifier) Send(_ context.Context, kind mail.Kind, recipient string, p mail.Payload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, capturedEmail{Kind: kind, Recipient: recipient, Payload: p})
	return nil
}

// waitFor polls until an email of the given kind arrives. Verification and
// confirmation emails are sent from a background goroutine.
func (n *captureNotifier) waitFor(t *testing.T, kind mail.Kind) capturedEmail {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		n.mu.Lock()
		for _, e := range n.emails {
			if e.Kind == kind {
				n.mu.Unlock()
				return e
			}
		}
		n.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("no %q email arrived within 2s", kind)
	return capturedEmail{}
}

// setupAuthServer starts the full service in-process and returns its base
// URL together with the notifier capturing outbound emails.
func setupAuthServer(t *testing.T) (string, *captureNotifier) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Join(t.TempDir(), "e2e.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256(e2eSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(e2eSecret, "doorkey-e2e", 0)
	require.NoError(t, err)

	notifier := &captureNotifier{}

	tokens := &service.TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   "doorkey-e2e",
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := httpapi.NewRouter(verifier, "e2e", st, logger, false, jwtx.DefaultSessionTTL)
	router.AuthService = &service.AuthService{
		Store:    st,
		Tokens:   tokens,
		Notifier: notifier,
		BaseURL:  "https://app.example.com",
	}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server.URL, notifier
}

// resetTokenFromLink pulls the raw token off the emailed reset link.
func resetTokenFromLink(t *testing.T, link string) string {
	t.Helper()

	const marker = "/reset-password/"
	idx := strings.LastIndex(link, marker)
	require.NotEqual(t, -1, idx, "reset link %q missing token path", link)
	return link[idx+len(marker):]
}
