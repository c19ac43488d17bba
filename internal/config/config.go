package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN            string        `mapstructure:"dsn"`
		MaxConns       int32         `mapstructure:"max_conns"`
		MinConns       int32         `mapstructure:"min_conns"`
		AcquireTimeout time.Duration `mapstructure:"acquire_timeout"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Web struct {
		TemplatesGlob string `mapstructure:"templates_glob"`
		StaticDir     string `mapstructure:"static_dir"`
	} `mapstructure:"web"`
}

func LoadConfig(path string) (cfg Config, err error) {

	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("db.max_conns", 10)
	viper.SetDefault("db.min_conns", 1)
	viper.SetDefault("db.acquire_timeout", 5*time.Second)
	viper.SetDefault("web.templates_glob", "web/templates/*.html")
	viper.SetDefault("web.static_dir", "web/static")

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("db.max_conns", "DB_MAX_CONNS")
	viper.BindEnv("db.min_conns", "DB_MIN_CONNS")
	viper.BindEnv("db.acquire_timeout", "DB_ACQUIRE_TIMEOUT")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("web.templates_glob", "WEB_TEMPLATES_GLOB")
	viper.BindEnv("web.static_dir", "WEB_STATIC_DIR")

	err = viper.Unmarshal(&cfg)
	return
}
