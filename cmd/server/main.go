// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/fabricator-bff/internal/config"
	"github.com/unclebandit/fabricator-bff/internal/controller"
	"github.com/unclebandit/fabricator-bff/internal/crm"
	"github.com/unclebandit/fabricator-bff/internal/db"
	"github.com/unclebandit/fabricator-bff/internal/events"
	"github.com/unclebandit/fabricator-bff/internal/handler"
	"github.com/unclebandit/fabricator-bff/internal/repository"
	"github.com/unclebandit/fabricator-bff/internal/service"
	"github.com/unclebandit/fabricator-bff/internal/session"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	health := &handler.HealthHandler{DataSource: cfg.DataSource}

	// Data source
	var leadRepo repository.LeadRepositoryInterface
	var requestRepo repository.ServiceRequestRepositoryInterface
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer conn.Close()
		pg := &repository.PostgresRepository{DB: conn}
		leadRepo, requestRepo = pg, pg
		health.Ping = conn.PingContext
	case config.DataSourceCRM:
		client := crm.NewClient(crm.Config{
			LoginURL:     cfg.CRMLoginURL,
			InstanceURL:  cfg.CRMInstanceURL,
			APIVersion:   cfg.CRMAPIVersion,
			ClientID:     cfg.CRMClientID,
			ClientSecret: cfg.CRMClientSecret,
			UpdatePath:   cfg.CRMUpdatePath,
			Timeout:      cfg.CRMTimeout,
		})
		leadRepo = &crm.LeadRepository{Client: client, Fabricator: cfg.CRMFabricatorName}
		requestRepo = &crm.ServiceRequestRepository{
			Client:         client,
			Fabricator:     cfg.CRMFabricatorName,
			TechnicianName: cfg.TechnicianName,
			TechnicianID:   cfg.TechnicianID,
		}
	default:
		sample := repository.NewSampleRepository()
		leadRepo, requestRepo = sample, sample
	}
	log.Println("📦 Data source:", cfg.DataSource)

	// Events
	var q events.Queue
	if cfg.AMQPURL != "" {
		amqpQueue, err := events.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
	} else {
		memQueue := events.NewInMemoryQueue()
		audit := make(chan events.RecordUpdated, 64)
		if err := events.StartRecordUpdateSubscriber(memQueue, func(ev events.RecordUpdated) { audit <- ev }); err != nil {
			log.Fatalf("❌ %v", err)
		}
		go service.NewAuditWorker(audit, service.LogSink).Start()
		q = memQueue
	}

	photoService := &service.PhotoService{Store: repository.NewPhotoStore()}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.FabricatorPasswordHash)
	sessions.SecureCookies(cfg.SecureCookies)
	sessions.OnInvalidate = photoService.DropSession

	router := controller.NewRouter(controller.RouterDeps{
		Sessions:              sessions,
		LeadService:           &service.LeadService{Repo: leadRepo, Queue: q, Fabricator: cfg.CRMFabricatorName},
		ServiceRequestService: &service.ServiceRequestService{Repo: requestRepo, Queue: q, Fabricator: cfg.CRMFabricatorName},
		DashboardService:      &service.DashboardService{FabricatorName: cfg.FabricatorDisplayName, DatabaseID: cfg.TechnicianID},
		PhotoService:          photoService,
		Health:                health,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Server running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("⚠️ shutdown:", err)
	}
}
