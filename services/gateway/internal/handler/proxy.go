package handler

import (
	"log"
	"math/rand"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/registry"

	"github.com/gin-gonic/gin"
)

// ProxyHandler forwards requests to one of a service's healthy instances
// discovered through consul.
type ProxyHandler struct {
	mgr         *registry.ServiceManager
	serviceName string
}

func NewProxyHandler(mgr *registry.ServiceManager, serviceName string) *ProxyHandler {
	return &ProxyHandler{mgr: mgr, serviceName: serviceName}
}

func (h *ProxyHandler) pickInstance() (*registry.ServiceInstance, error) {
	instances, err := h.mgr.DiscoverService(h.serviceName)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, err
	}
	// Random load balancing.
	return instances[rand.Intn(len(instances))], nil
}

func (h *ProxyHandler) Proxy(c *gin.Context) {
	instance, err := h.pickInstance()
	if err != nil || instance == nil {
		log.Printf("no instances for %s: %v", h.serviceName, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	target, err := url.Parse(instance.GetURL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bad upstream address"})
		return
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("proxy to %s failed: %v", h.serviceName, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"Service unavailable"}`))
	}

	c.Request.Host = target.Host
	proxy.ServeHTTP(c.Writer, c.Request)
}
