package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	ServerName  string         `mapstructure:"server_name" yaml:"server_name"`
	Version     string         `mapstructure:"version" yaml:"version"`
	Environment string         `mapstructure:"environment" yaml:"environment"`
	Redis       RedisConfig    `mapstructure:"redis" yaml:"redis"`
	Postgres    PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	Consul      ConsulConfig   `mapstructure:"consul" yaml:"consul"`
	Gateway     GatewayConfig  `mapstructure:"gateway" yaml:"gateway"`
	Auth        AuthConfig     `mapstructure:"auth" yaml:"auth"`
	AIEngine    AIEngineConfig `mapstructure:"ai_engine" yaml:"ai_engine"`
	Civic       CivicConfig    `mapstructure:"civic" yaml:"civic"`
	LLM         LLMConfig      `mapstructure:"llm" yaml:"llm"`
	RocketMQ    RocketMQConfig `mapstructure:"rocketmq" yaml:"rocketmq"`
}

type RedisConfig struct {
	Address      string        `mapstructure:"address" yaml:"address"`
	Port         int           `mapstructure:"port" yaml:"port"`
	Password     string        `mapstructure:"password" yaml:"password"`
	Database     int           `mapstructure:"database" yaml:"database"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
	RateLimitQPS int           `mapstructure:"rate_limit_qps" yaml:"rate_limit_qps"`
}

type PostgresConfig struct {
	Address  string        `mapstructure:"address" yaml:"address"`
	Port     int           `mapstructure:"port" yaml:"port"`
	User     string        `mapstructure:"user" yaml:"user"`
	Password string        `mapstructure:"password" yaml:"password"`
	DBName   string        `mapstructure:"db_name" yaml:"db_name"`
	MaxIdle  int           `mapstructure:"max_idle" yaml:"max_idle"`
	MaxOpen  int           `mapstructure:"max_open" yaml:"max_open"`
	MaxLife  time.Duration `mapstructure:"max_life" yaml:"max_life"`
}

type ConsulConfig struct {
	Address    string `mapstructure:"address" yaml:"address"`
	Scheme     string `mapstructure:"scheme" yaml:"scheme"`
	Datacenter string `mapstructure:"datacenter" yaml:"datacenter"`
}

type GatewayConfig struct {
	ServerName string `mapstructure:"server_name" yaml:"server_name"`
	Port       int    `mapstructure:"port" yaml:"port"`
}

type AuthConfig struct {
	ServerName       string `mapstructure:"server_name" yaml:"server_name"`
	Port             int    `mapstructure:"port" yaml:"port"`
	GRPCPort         int    `mapstructure:"grpc_port" yaml:"grpc_port"`
	JwtSecret        string `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	Expire_Access_H  int    `mapstructure:"expire_access_h" yaml:"expire_access_h"`
	Expire_Refresh_H int    `mapstructure:"expire_refresh_h" yaml:"expire_refresh_h"`
}

type AIEngineConfig struct {
	ServerName   string `mapstructure:"server_name" yaml:"server_name"`
	Port         int    `mapstructure:"port" yaml:"port"`
	GRPCPort     int    `mapstructure:"grpc_port" yaml:"grpc_port"`
	SessionStore string `mapstructure:"session_store" yaml:"session_store"` // memory | redis
}

type CivicConfig struct {
	ServerName string `mapstructure:"server_name" yaml:"server_name"`
	Port       int    `mapstructure:"port" yaml:"port"`
	GRPCPort   int    `mapstructure:"grpc_port" yaml:"grpc_port"`
}

type LLMConfig struct {
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`
	APIKey      string        `mapstructure:"api_key" yaml:"api_key"`
	Model       string        `mapstructure:"model" yaml:"model"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type RocketMQConfig struct {
	NameServers   []string `mapstructure:"name_servers" yaml:"name_servers"`
	MaxRetries    int      `mapstructure:"max_retries" yaml:"max_retries"`
	GroupName     string   `mapstructure:"group_name" yaml:"group_name"`
	ConsumerGroup string   `mapstructure:"consumer_group" yaml:"consumer_group"`
	Topics        struct {
		Audit string `mapstructure:"audit" yaml:"audit"`
	} `mapstructure:"topics" yaml:"topics"`
}

func LoadConfig() (*AppConfig, error) {
	var config AppConfig

	viper.SetConfigFile("config/config.yml")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return &config, err
	}
	if err := viper.Unmarshal(&config); err != nil {
		return &config, err
	}
	return &config, nil
}
