package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	assistantPkg "xymworkout/internal/adapters/assistant"
	emailPkg "xymworkout/internal/adapters/email"
	web "xymworkout/internal/adapters/http"
	"xymworkout/internal/adapters/storage"
	documentStore "xymworkout/internal/adapters/storage/document"
	ledgerStore "xymworkout/internal/adapters/storage/ledger"
	"xymworkout/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("XYM_DB_PATH", "xymworkout.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Println("Database initialized successfully!")

	ledger := ledgerStore.NewDocumentStore(documentStore.NewSQLiteStore(db))
	stores := &web.Stores{
		LedgerStore: ledger,
	}

	// Seed synthetic data for development only
	if os.Getenv("XYM_ENV") != "production" {
		synDeps := orchestrators.SyntheticSeedDeps{LedgerStore: ledger}
		if err := orchestrators.ExecuteSeedSynthetic(context.Background(), synDeps); err != nil {
			log.Fatalf("failed to seed synthetic data: %v", err)
		}
		log.Println("Synthetic seed data loaded (dev mode)")
	}

	// Configure email sender for backups
	resendKey := os.Getenv("XYM_RESEND_KEY")
	emailFrom := envOrDefault("XYM_RESEND_FROM", "XYM Workout <noreply@xymworkout.app>")
	backupTo := os.Getenv("XYM_BACKUP_TO")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, backupTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, backupTo)
		if os.Getenv("XYM_ENV") == "production" {
			log.Println("WARNING: XYM_RESEND_KEY is not set — email backups are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set XYM_RESEND_KEY for real delivery)")
		}
	}

	// Configure the workout assistant
	if openaiKey := os.Getenv("XYM_OPENAI_KEY"); openaiKey != "" {
		svc := assistantPkg.NewOpenAIService(openaiKey)
		if model := os.Getenv("XYM_OPENAI_MODEL"); model != "" {
			svc.SetModel(model)
		}
		web.SetAssistant(svc)
		log.Println("Workout assistant configured (OpenAI)")
	} else {
		web.SetAssistant(assistantPkg.NewNoopService())
		log.Println("Workout assistant configured (noop — set XYM_OPENAI_KEY for real generation)")
	}

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("XYM_ADDR", ":8080")
	log.Printf("XYM Workout %s starting on %s (env=%s)", version, addr, envOrDefault("XYM_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
