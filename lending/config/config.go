package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lab-lending/pkg/kafka"
	"github.com/Astemirdum/lab-lending/pkg/logger"
	"github.com/Astemirdum/lab-lending/pkg/postgres"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Auth struct {
	JWTSecret string `yaml:"jwtSecret" envconfig:"JWT_SECRET" json:"-"`
}

type Storage struct {
	Driver string `yaml:"driver" envconfig:"STORAGE_DRIVER"`
}

type Transfer struct {
	QRTTL       time.Duration `yaml:"qrTTL" envconfig:"TRANSFER_QR_TTL"`
	FrontendURL string        `yaml:"frontendURL" envconfig:"FRONTEND_URL"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Log      logger.Log   `yaml:"log"`
	Auth     Auth         `yaml:"auth"`
	Storage  Storage      `yaml:"storage"`
	Transfer Transfer     `yaml:"transfer"`
}

func defaultConfig() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: postgres.DB{
			Host:     "localhost",
			Port:     5432,
			Username: "postgres",
			NameDB:   "lending",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Kafka:    kafka.Config{Topic: kafka.EventsTopic},
		Storage:  Storage{Driver: StoragePostgres},
		Transfer: Transfer{QRTTL: 24 * time.Hour, FrontendURL: "http://localhost:3000"},
	}
}

// Load applies defaults, then options in order, then environment overrides.
func Load(ops ...Option) (Config, error) {
	config := defaultConfig()
	for _, op := range ops {
		if err := op(&config); err != nil {
			return Config{}, err
		}
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, errors.Wrap(err, "envconfig")
	}
	return config, config.validate()
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StoragePostgres, StorageMemory:
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Transfer.QRTTL < 0 {
		return errors.New("TRANSFER_QR_TTL must not be negative")
	}
	return nil
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
