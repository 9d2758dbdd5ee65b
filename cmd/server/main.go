package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "clubadmin/internal/adapters/email"
	web "clubadmin/internal/adapters/http"
	"clubadmin/internal/adapters/storage"
	accountStore "clubadmin/internal/adapters/storage/account"
	activityStore "clubadmin/internal/adapters/storage/activity"
	removalStore "clubadmin/internal/adapters/storage/removal"
	"clubadmin/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("CLUBADMIN_DB", "clubadmin.db")
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

	// Run database migrations
	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap DB with slow-query instrumentation
	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:  acctStore,
		ActivityStore: activityStore.NewSQLiteStore(timedDB),
		RemovalStore:  removalStore.NewSQLiteStore(timedDB),
	}

	// Seed default admin account if no accounts exist
	adminEmail := envOrDefault("CLUBADMIN_ADMIN_EMAIL", "bithu@chidoan.vn")
	adminPassword := envOrDefault("CLUBADMIN_ADMIN_PASSWORD", "doi mat khau ngay")
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("CLUBADMIN_RESEND_KEY")
	emailFrom := envOrDefault("CLUBADMIN_RESEND_FROM", "Chi đoàn <noreply@chidoan.vn>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if os.Getenv("CLUBADMIN_ENV") == "production" {
			log.Println("WARNING: CLUBADMIN_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CLUBADMIN_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("CLUBADMIN_ADDR", ":8080")
	log.Printf("Clubadmin %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("CLUBADMIN_ENV", "development"), storage.LatestSchemaVersion())

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
