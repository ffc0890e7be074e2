package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Logger LoggerConfig
	JWT    JWTConfig
	OAuth  GoogleOAuthConfig
	Quiz   QuizConfig
	Hint   HintConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Service  string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// QuizConfig controls quiz assembly and session lifetime.
type QuizConfig struct {
	// DefaultQuestionCount is used when a start request omits the count.
	DefaultQuestionCount int
	// MaxQuestionCount caps the per-session question count.
	MaxQuestionCount int
	// PoolFetchLimit is how many candidates each selection tier is asked for.
	PoolFetchLimit int
	// SessionTTL is how long an unfinished session survives in the store.
	SessionTTL time.Duration
}

// HintConfig controls the optional example-sentence generator.
type HintConfig struct {
	Enabled   bool
	ServerURL string
	Model     string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Service:  viper.GetString("db.service"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("env"),
		},
		JWT: JWTConfig{
			SecretKey:       viper.GetString("auth.jwt.secret_key"),
			AccessTokenTTL:  viper.GetDuration("auth.jwt.access_token_ttl"),
			RefreshTokenTTL: viper.GetDuration("auth.jwt.refresh_token_ttl"),
		},
		OAuth: GoogleOAuthConfig{
			ClientID:     viper.GetString("auth.google.client_id"),
			ClientSecret: viper.GetString("auth.google.client_secret"),
			RedirectURL:  viper.GetString("auth.google.redirect_url"),
		},
		Quiz: QuizConfig{
			DefaultQuestionCount: viper.GetInt("quiz.default_question_count"),
			MaxQuestionCount:     viper.GetInt("quiz.max_question_count"),
			PoolFetchLimit:       viper.GetInt("quiz.pool_fetch_limit"),
			SessionTTL:           viper.GetDuration("quiz.session_ttl"),
		},
		Hint: HintConfig{
			Enabled:   viper.GetBool("hint.enabled"),
			ServerURL: viper.GetString("hint.server_url"),
			Model:     viper.GetString("hint.model"),
			Timeout:   viper.GetDuration("hint.timeout"),
			CacheTTL:  viper.GetDuration("hint.cache_ttl"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if service := os.Getenv("DB_SERVICE"); service != "" {
		config.DB.Service = service
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		config.OAuth.ClientID = clientID
	}
	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		config.OAuth.ClientSecret = clientSecret
	}
	if hintServer := os.Getenv("HINT_SERVER_URL"); hintServer != "" {
		config.Hint.ServerURL = hintServer
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.port", 1521)
	viper.SetDefault("quiz.default_question_count", 10)
	viper.SetDefault("quiz.max_question_count", 50)
	viper.SetDefault("quiz.pool_fetch_limit", 100)
	viper.SetDefault("quiz.session_ttl", 30*time.Minute)
	viper.SetDefault("auth.jwt.access_token_ttl", 15*time.Minute)
	viper.SetDefault("auth.jwt.refresh_token_ttl", 7*24*time.Hour)
	viper.SetDefault("hint.enabled", false)
	viper.SetDefault("hint.model", "qwen3:0.6b")
	viper.SetDefault("hint.timeout", 20*time.Second)
	viper.SetDefault("hint.cache_ttl", 24*time.Hour)
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Service,
	)
}
