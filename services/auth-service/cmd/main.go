package main

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/application"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/handler"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/infrastructure/persistence"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/infrastructure/security"
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
	serviceName := cfg.Auth.ServerName

	db, err := persistence.InitGorm(persistence.BuildDSN(&cfg.Postgres))
	if err != nil {
		log.Fatalf("init postgres: %v", err)
	}

	userRepo := persistence.NewUserRepository(db)
	jwtService := security.NewJWTService(cfg.Auth.JwtSecret, cfg.Auth.Expire_Access_H, cfg.Auth.Expire_Refresh_H)
	authService := application.NewAuthService(userRepo, jwtService, security.NewBcryptEncoder())
	authHandler := handler.NewAuthHandler(authService)

	go serveHealth(serviceName, cfg.Auth.GRPCPort)
	registerWithConsul(cfg, serviceName)

	r := gin.Default()
	r.GET("/health", authHandler.Health)
	api := r.Group("/api/auth")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)
	}

	log.Printf("auth-service listening on :%d", cfg.Auth.Port)
	log.Fatal(r.Run(fmt.Sprintf(":%d", cfg.Auth.Port)))
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
			ID:      registry.GenerateServiceID(serviceName, cfg.Auth.Port),
			Name:    serviceName,
			Tags:    []string{serviceName, "api", "v1"},
			Address: localIP,
			Port:    cfg.Auth.Port,
			HealthCheck: &registry.HealthCheck{
				Type:                           "grpc",
				GRPC:                           fmt.Sprintf("%s:%d", localIP, cfg.Auth.GRPCPort),
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
