package main

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/application"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/handler"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/infrastructure/mq"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/infrastructure/persistence"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/config"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/registry"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	serviceName := cfg.Civic.ServerName

	db, err := persistence.InitGorm(persistence.BuildDSN(&cfg.Postgres))
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	eventRepo := persistence.NewEventRepository(db)
	registrationRepo := persistence.NewRegistrationRepository(db)
	auditLogRepo := persistence.NewAuditLogRepository(db)

	civicService := application.NewCivicService(eventRepo, registrationRepo, auditLogRepo)
	civicHandler := handler.NewCivicHandler(civicService)

	auditConsumer, err := mq.InitConsumer(&cfg.RocketMQ, auditLogRepo)
	if err != nil {
		log.Printf("audit consumer unavailable, audit sink disabled: %v", err)
	}
	if auditConsumer != nil {
		defer auditConsumer.Shutdown()
	}

	go serveHealth(serviceName, cfg.Civic.GRPCPort)

	registerWithConsul(cfg, serviceName)

	r := gin.Default()
	r.GET("/health", civicHandler.Health)
	api := r.Group("/api")
	{
		api.GET("/events", civicHandler.ListEvents)
		api.GET("/events/:id", civicHandler.GetEvent)
		api.POST("/events", civicHandler.CreateEvent)
		api.POST("/registrations", civicHandler.RegisterForEvent)
		api.GET("/registrations/my", civicHandler.MyRegistrations)
		api.GET("/audit/:sessionId", civicHandler.SessionAuditTrail)
	}

	log.Printf("civic-service listening on :%d", cfg.Civic.Port)
	log.Fatal(r.Run(fmt.Sprintf(":%d", cfg.Civic.Port)))
}

func serveHealth(serviceName string, grpcPort int) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		log.Printf("health listener failed: %v", err)
		return
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("health server stopped: %v", err)
	}
}

func registerWithConsul(cfg *config.AppConfig, serviceName string) {
	localIP, err := registry.GetLocalIP()
	if err != nil {
		log.Printf("local IP lookup failed, skipping consul registration: %v", err)
		return
	}
	svcMgr, err := registry.NewServiceManager(
		&registry.ConsulConfig{
			Address:    cfg.Consul.Address,
			Scheme:     cfg.Consul.Scheme,
			Datacenter: cfg.Consul.Datacenter,
		},
		&registry.ServiceConfig{
			ID:      registry.GenerateServiceID(serviceName, cfg.Civic.Port),
			Name:    serviceName,
			Tags:    []string{serviceName, "api", "v1"},
			Address: localIP,
			Port:    cfg.Civic.Port,
			HealthCheck: &registry.HealthCheck{
				Type:                           "grpc",
				GRPC:                           fmt.Sprintf("%s:%d", localIP, cfg.Civic.GRPCPort),
				Interval:                       10 * time.Second,
				Timeout:                        3 * time.Second,
				DeregisterCriticalServiceAfter: 1 * time.Minute,
			},
		},
	)
	if err != nil {
		log.Printf("consul unavailable, running unregistered: %v", err)
		return
	}
	if err := svcMgr.Start(); err != nil {
		log.Printf("consul registration failed: %v", err)
	}
}
