package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"xymworkout/internal/adapters/assistant"
	"xymworkout/internal/adapters/email"
	"xymworkout/internal/adapters/http/middleware"
	ledgerStore "xymworkout/internal/adapters/storage/ledger"
)

// Stores holds all storage dependencies.
type Stores struct {
	LedgerStore ledgerStore.Store
}

// loadCSRFKey reads the CSRF secret from XYM_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("XYM_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("XYM_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("XYM_ENV") == "production" {
		log.Fatal("XYM_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key. Set XYM_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailBackupTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, backupTo string) {
	emailSender = sender
	emailFromAddress = from
	emailBackupTo = backupTo
}

// Global assistant service instance (set by SetAssistant)
var workoutAssistant assistant.Service

// SetAssistant sets the global workout assistant for the application.
func SetAssistant(svc assistant.Service) {
	workoutAssistant = svc
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
	)
}
