package registry

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/hashicorp/consul/api"
)

type ConsulRegistry struct {
	client *api.Client
	config *ConsulConfig
}

type ConsulConfig struct {
	Address    string
	Scheme     string
	Datacenter string
}

type ServiceConfig struct {
	ID          string
	Name        string
	Tags        []string
	Address     string
	Port        int
	HealthCheck *HealthCheck
}

type HealthCheck struct {
	Type                           string // "http" or "grpc"
	HTTP                           string
	GRPC                           string
	Interval                       time.Duration
	Timeout                        time.Duration
	DeregisterCriticalServiceAfter time.Duration
}

type ServiceInstance struct {
	ID      string
	Name    string
	Address string
	Port    int
	Tags    []string
}

func (s *ServiceInstance) GetURL() string {
	return fmt.Sprintf("http://%s:%d", s.Address, s.Port)
}

func NewConsulRegistry(config *ConsulConfig) (*ConsulRegistry, error) {
	consulConfig := api.DefaultConfig()
	consulConfig.Address = config.Address
	consulConfig.Scheme = config.Scheme
	consulConfig.Datacenter = config.Datacenter

	client, err := api.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}
	if _, err = client.Status().Leader(); err != nil {
		return nil, fmt.Errorf("connect consul: %w", err)
	}
	log.Printf("consul connected: %s", config.Address)
	return &ConsulRegistry{
		client: client,
		config: config,
	}, nil
}

func (r *ConsulRegistry) RegisterService(config *ServiceConfig) error {
	registration := &api.AgentServiceRegistration{
		ID:      config.ID,
		Name:    config.Name,
		Tags:    config.Tags,
		Address: config.Address,
		Port:    config.Port,
	}

	if config.HealthCheck != nil {
		check := &api.AgentServiceCheck{
			Interval:                       config.HealthCheck.Interval.String(),
			Timeout:                        config.HealthCheck.Timeout.String(),
			DeregisterCriticalServiceAfter: config.HealthCheck.DeregisterCriticalServiceAfter.String(),
		}
		if config.HealthCheck.Type == "grpc" {
			check.GRPC = config.HealthCheck.GRPC
		} else {
			check.HTTP = config.HealthCheck.HTTP
		}
		registration.Check = check
	}

	if err := r.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("register service %s: %w", config.Name, err)
	}

	log.Printf("service registered: %s (ID: %s)", config.Name, config.ID)
	return nil
}

func (r *ConsulRegistry) DeregisterService(serviceID string) error {
	if err := r.client.Agent().ServiceDeregister(serviceID); err != nil {
		return fmt.Errorf("deregister service %s: %w", serviceID, err)
	}
	log.Printf("service deregistered: %s", serviceID)
	return nil
}

// DiscoverService returns only instances passing their health checks.
func (r *ConsulRegistry) DiscoverService(serviceName string) ([]*ServiceInstance, error) {
	services, _, err := r.client.Health().Service(serviceName, "", true, nil)
	if err != nil {
		return nil, fmt.Errorf("discover service %s: %w", serviceName, err)
	}

	var instances []*ServiceInstance
	for _, service := range services {
		instances = append(instances, &ServiceInstance{
			ID:      service.Service.ID,
			Name:    service.Service.Service,
			Address: service.Service.Address,
			Port:    service.Service.Port,
			Tags:    service.Service.Tags,
		})
	}
	return instances, nil
}

func GetLocalIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

func GenerateServiceID(serviceName string, port int) string {
	ip, _ := GetLocalIP()
	return fmt.Sprintf("%s-%s-%d", serviceName, ip, port)
}
