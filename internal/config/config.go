package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Pipeline
	MinIO
	PostgreSQL
	Notifier
	Redis
	Influx
	HTTP
}

type App struct {
	ReportsDirectory string
	RunInterval      time.Duration
	RunOnStart       bool
	Once             bool
}

type Pipeline struct {
	Table            string
	TempDirectory    string
	ChunkSize        int
	SampleSize       int
	MinValidYear     int
	MaxNetGeneration float64
	AvgRowSize       int
	SkipLoaded       bool
}

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	Secure    bool
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type Notifier struct {
	Backend      string
	NATSURL      string
	NATSSubject  string
	KafkaBrokers []string
	KafkaTopic   string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type Influx struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			ReportsDirectory: cmd.String("reports-dir"),
			RunInterval:      cmd.Duration("run-interval"),
			RunOnStart:       cmd.Bool("run-on-start"),
			Once:             cmd.Bool("once"),
		},
		Pipeline: Pipeline{
			Table:            cmd.String("table"),
			TempDirectory:    cmd.String("temp-dir"),
			ChunkSize:        cmd.Int("chunk-size"),
			SampleSize:       cmd.Int("sample-size"),
			MinValidYear:     cmd.Int("min-valid-year"),
			MaxNetGeneration: cmd.Float("max-net-generation"),
			AvgRowSize:       cmd.Int("avg-row-size"),
			SkipLoaded:       cmd.Bool("skip-loaded"),
		},
		MinIO: MinIO{
			Endpoint:  cmd.String("minio-endpoint"),
			AccessKey: cmd.String("minio-access-key"),
			SecretKey: cmd.String("minio-secret-key"),
			Bucket:    cmd.String("minio-bucket"),
			Prefix:    cmd.String("minio-prefix"),
			Secure:    cmd.Bool("minio-secure"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int("pg-max-conns"),
		},
		Notifier: Notifier{
			Backend:      cmd.String("notifier"),
			NATSURL:      cmd.String("nats-url"),
			NATSSubject:  cmd.String("nats-subject"),
			KafkaBrokers: cmd.StringSlice("kafka-brokers"),
			KafkaTopic:   cmd.String("kafka-topic"),
		},
		Redis: Redis{
			Addr:     cmd.String("redis-addr"),
			Password: cmd.String("redis-password"),
			DB:       cmd.Int("redis-db"),
			Key:      cmd.String("redis-key"),
		},
		Influx: Influx{
			URL:    cmd.String("influx-url"),
			Token:  cmd.String("influx-token"),
			Org:    cmd.String("influx-org"),
			Bucket: cmd.String("influx-bucket"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
