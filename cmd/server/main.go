package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/surveyflow/surveyflow/internal/api"
	"github.com/surveyflow/surveyflow/internal/catalog"
	"github.com/surveyflow/surveyflow/internal/config"
	dbstore "github.com/surveyflow/surveyflow/internal/db"
	"github.com/surveyflow/surveyflow/internal/middleware"
	"github.com/surveyflow/surveyflow/internal/services"
	"github.com/surveyflow/surveyflow/internal/session"
	"github.com/surveyflow/surveyflow/internal/utils"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(utils.SafeEnv("SURVEY_CONFIG", "config.yaml"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// A missing or unreadable catalog means the process must not serve.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load question catalog: %v", err)
	}

	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create sqlite dir: %v", err)
		}
	}
	sqlDB, err := sql.Open("sqlite3", dbstore.DSN(filepath.ToSlash(cfg.SQLitePath)))
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("warning: failed to close sqlite db: %v", cerr)
		}
	}()
	if err := dbstore.RunMigrations(sqlDB, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	responses, err := dbstore.NewStore(sqlDB)
	if err != nil {
		log.Fatalf("init response store: %v", err)
	}

	sessions := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	signer := services.NewConfirmationSigner([]byte(cfg.Secret), time.Duration(cfg.ConfirmTTLMinutes)*time.Minute)
	flow := services.NewFlowService(sessions, responses, api.NewCatalogAdapter(cat), signer)

	mux := http.NewServeMux()
	api.NewRouter(flow, cfg.AdminPassHash).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":        true,
			"name":      "Survey API",
			"locale":    locale,
			"msg":       utils.T(locale, "health.ok"),
			"questions": cat.Len(),
		})
	})

	// Frontend serving strategy (priority):
	// 1) Static files if a static dir is configured (fullstack image)
	// 2) Dev proxy if a dev frontend URL is configured
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	} else if cfg.DevFrontendURL != "" {
		if u, err := url.Parse(cfg.DevFrontendURL); err == nil {
			rp := httputil.NewSingleHostReverseProxy(u)
			rp.ModifyResponse = func(res *http.Response) error {
				res.Header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
				res.Header.Set("Pragma", "no-cache")
				res.Header.Set("Expires", "0")
				return nil
			}
			mux.Handle("/", rp)
		} else {
			log.Printf("invalid dev_frontend_url %q: %v", cfg.DevFrontendURL, err)
		}
	}

	handler := middleware.NoStore(
		middleware.SecureHeaders(
			middleware.Locale(cfg.Languages, services.DefaultLanguage)(
				middleware.WithSessionToken(mux))))

	log.Printf("survey server listening on %s (catalog: %d questions)", cfg.Addr, cat.Len())
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
