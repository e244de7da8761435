package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/gateway/internal/handler"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/gateway/internal/middleware"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/config"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/registry"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	serviceName := cfg.Gateway.ServerName
	servicePort := cfg.Gateway.Port

	localIP, err := registry.GetLocalIP()
	if err != nil {
		log.Fatalf("local IP lookup failed: %v", err)
	}
	svcMgr, err := registry.NewServiceManager(
		&registry.ConsulConfig{
			Address:    cfg.Consul.Address,
			Scheme:     cfg.Consul.Scheme,
			Datacenter: cfg.Consul.Datacenter,
		},
		&registry.ServiceConfig{
			ID:      registry.GenerateServiceID(serviceName, servicePort),
			Name:    serviceName,
			Tags:    []string{serviceName, "api", "v1"},
			Address: localIP,
			Port:    servicePort,
			HealthCheck: &registry.HealthCheck{
				Type:                           "http",
				HTTP:                           fmt.Sprintf("http://%s:%d/health", localIP, servicePort),
				Interval:                       10 * time.Second,
				Timeout:                        3 * time.Second,
				DeregisterCriticalServiceAfter: 1 * time.Minute,
			},
		},
	)
	if err != nil {
		log.Fatalf("init consul client: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Address, cfg.Redis.Port),
		Password: cfg.Redis.Password,
	})

	authProxy := handler.NewProxyHandler(svcMgr, cfg.Auth.ServerName)
	aiProxy := handler.NewProxyHandler(svcMgr, cfg.AIEngine.ServerName)
	civicProxy := handler.NewProxyHandler(svcMgr, cfg.Civic.ServerName)

	jwtAuth := middleware.JwtAuth(cfg.Auth.JwtSecret)
	stripIdentity := middleware.StripIdentityHeaders()

	r := gin.Default()
	r.SetTrustedProxies([]string{
		"127.0.0.1/32",
		"10.0.0.0/8",
		"172.20.0.0/16",
	})
	r.Use(middleware.RateLimit(redisClient, cfg.Redis.RateLimitQPS))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authProxy.Proxy)
			auth.POST("/login", authProxy.Proxy)
			auth.POST("/refresh", authProxy.Proxy)
		}

		// Citizen message intake runs through the decision pipeline.
		api.POST("/ai/message", jwtAuth, aiProxy.Proxy)

		api.GET("/events", stripIdentity, civicProxy.Proxy)
		api.GET("/events/:id", stripIdentity, civicProxy.Proxy)
		api.POST("/events", jwtAuth, civicProxy.Proxy)

		api.POST("/registrations", jwtAuth, civicProxy.Proxy)
		api.GET("/registrations/my", jwtAuth, civicProxy.Proxy)

		api.GET("/audit/:sessionId", jwtAuth, civicProxy.Proxy)
	}

	svcMgr.Start()
	log.Printf("gateway listening on :%d", servicePort)
	log.Fatal(r.Run(fmt.Sprintf(":%d", servicePort)))
}
