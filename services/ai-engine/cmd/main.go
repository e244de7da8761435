package main

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/application"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/handler"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/infrastructure/llm"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/infrastructure/mq"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/infrastructure/store"
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
	serviceName := cfg.AIEngine.ServerName

	// Session store: redis when configured for durability, else in-process.
	var sessions domain.SessionStore
	if cfg.AIEngine.SessionStore == "redis" {
		redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Address, cfg.Redis.Port)
		redisStore, err := store.NewRedisSessionStore(redisAddr, cfg.Redis.Password, cfg.Redis.Database, cfg.Redis.SessionTTL)
		if err != nil {
			log.Fatalf("init redis session store: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		sessions = store.NewMemorySessionStore()
	}

	llmClient := llm.NewClient(&cfg.LLM)

	auditProducer, err := mq.InitProducer(&cfg.RocketMQ)
	if err != nil {
		log.Printf("audit producer unavailable, audit trail disabled: %v", err)
	}
	var audit domain.AuditPublisher
	if auditProducer != nil {
		audit = auditProducer
	}

	governance := application.NewGovernanceService(sessions, llmClient, audit)
	messageHandler := handler.NewMessageHandler(governance)

	// gRPC health server probed by consul.
	go serveHealth(serviceName, cfg.AIEngine.GRPCPort)

	registerWithConsul(cfg, serviceName)

	r := gin.Default()
	r.GET("/health", messageHandler.Health)
	api := r.Group("/api/ai")
	{
		api.POST("/message", messageHandler.HandleMessage)
	}

	log.Printf("ai-engine listening on :%d", cfg.AIEngine.Port)
	log.Fatal(r.Run(fmt.Sprintf(":%d", cfg.AIEngine.Port)))
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
			ID:      registry.GenerateServiceID(serviceName, cfg.AIEngine.Port),
			Name:    serviceName,
			Tags:    []string{serviceName, "api", "v1"},
			Address: localIP,
			Port:    cfg.AIEngine.Port,
			HealthCheck: &registry.HealthCheck{
				Type:                           "grpc",
				GRPC:                           fmt.Sprintf("%s:%d", localIP, cfg.AIEngine.GRPCPort),
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
