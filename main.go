package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	auth "Cantilever/internal/auth"
	autodesign "Cantilever/internal/calc/autodesign"
	batch "Cantilever/internal/calc/batch"
	beam "Cantilever/internal/calc/beam"
	chart "Cantilever/internal/calc/chart"
	deflection "Cantilever/internal/calc/deflection"
	importer "Cantilever/internal/calc/importer"
	loads "Cantilever/internal/calc/loads"
	materials "Cantilever/internal/calc/materials"
	report "Cantilever/internal/calc/report"
	section "Cantilever/internal/calc/section"
	config "Cantilever/internal/config"
	repo "Cantilever/internal/repo"
)

var wg sync.WaitGroup

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// HandleList registers every route on router and returns the shared rate
// limiter so the caller can sweep it.
func HandleList(router *mux.Router, cfg config.Config, userRepo repo.Repository) *auth.IPRateLimiter {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	materialsH := &materials.Handler{}
	beamH := &beam.Handler{}
	sectionH := &section.Handler{}
	loadsH := &loads.Handler{}
	deflectionH := &deflection.Handler{}
	chartH := &chart.Handler{}

	api.HandleFunc("/materials", materialsH.List).Methods("GET")
	api.HandleFunc("/tools/beam/calc", beamH.Calc).Methods("POST")
	api.HandleFunc("/tools/section/calc", sectionH.Calc).Methods("POST")
	api.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	api.HandleFunc("/tools/loads/methods", loadsH.Methods).Methods("GET")
	api.HandleFunc("/tools/deflection/calc", deflectionH.Calc).Methods("POST")
	api.HandleFunc("/tools/beam/chart.png", chartH.PNG).Methods("POST")
	api.HandleFunc("/tools/beam/chart.html", chartH.HTML).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	autoH := &autodesign.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/beam/autodesign", autoH.Beam).Methods("POST")
	secureApi.HandleFunc("/tools/beam/batch", batchH.Beam).Methods("POST")
	secureApi.HandleFunc("/tools/beam/import", importH.Beam).Methods("POST")
	secureApi.HandleFunc("/tools/beam/export", importH.Export).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	return limiter
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database: ", err)
	}
	defer db.Close()

	router := mux.NewRouter()
	limiter := HandleList(router, cfg, repo.NewPostgresUserDB(db))

	wg.Add(1)
	go func() {
		defer wg.Done()
		limiter.Run(ctx, time.Minute, 10*time.Minute)
	}()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s (tls=%t)", server.Addr, cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
