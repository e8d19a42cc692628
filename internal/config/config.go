package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Manager ManagerConfig `yaml:"nsx_manager"`
	SSL     SSLConfig     `yaml:"ssl"`
	Section SectionConfig `yaml:"section"`
	API     APIConfig     `yaml:"api"`
}

type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

type ManagerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SSLConfig struct {
	// VerifyCertificates controls certificate-chain validation only.
	// TLS is always negotiated.
	VerifyCertificates bool `yaml:"verify_certificates"`
}

type SectionConfig struct {
	// Id of an existing section. Leave empty to resolve by name.
	Id       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"` // LAYER2 | LAYER3
}

type APIConfig struct {
	TimeoutMs int `yaml:"timeout_ms"`
	Retries   int `yaml:"retries"`
}

func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMs) * time.Millisecond
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:   "127.0.0.1:8060",
			DBPath: "/var/lib/dfwportal/firewall.db",
		},
		Manager: ManagerConfig{
			Host:     "192.168.1.100",
			Port:     443,
			Username: "admin",
		},
		SSL: SSLConfig{
			VerifyCertificates: true,
		},
		Section: SectionConfig{
			Name:     "DFW-Portal-Rules",
			Category: "LAYER3",
		},
		API: APIConfig{
			TimeoutMs: 30000,
			Retries:   3,
		},
	}
}

// Load builds the active configuration: defaults, then the optional YAML
// file at path, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Section.Name == "" {
		return nil, fmt.Errorf("section name must not be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "PORTAL_ADDR")
	setString(&cfg.Server.DBPath, "PORTAL_DB_PATH")

	setString(&cfg.Manager.Host, "NSX_MANAGER_HOST")
	setInt(&cfg.Manager.Port, "NSX_MANAGER_PORT")
	setString(&cfg.Manager.Username, "NSX_MANAGER_USERNAME")
	setString(&cfg.Manager.Password, "NSX_MANAGER_PASSWORD")

	setBool(&cfg.SSL.VerifyCertificates, "NSX_VERIFY_SSL")

	setString(&cfg.Section.Id, "NSX_SECTION_ID")
	setString(&cfg.Section.Name, "NSX_SECTION_NAME")
	setString(&cfg.Section.Category, "NSX_SECTION_CATEGORY")

	setInt(&cfg.API.TimeoutMs, "NSX_TIMEOUT_MS")
	setInt(&cfg.API.Retries, "NSX_RETRIES")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}
