// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	MaxAttempts int `mapstructure:"max_attempts"` // 1日あたりの最大挑戦回数
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	SecretKey string `mapstructure:"secret_key"` // 生成APIのJWT署名キー
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	ChatModel      string `mapstructure:"chat_model"`
	ImageModel     string `mapstructure:"image_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"` // 採点呼び出しのタイムアウト
}

type StorageConfig struct {
	Type string `mapstructure:"type"` // "s3" or "log"
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Storage  StorageConfig  `mapstructure:"storage"`
	S3       S3Config       `mapstructure:"s3"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数でも上書きできるようにする (例: APP_SERVER_PORT)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.secret_key", "AUTH_SECRET_KEY")
	viper.BindEnv("s3.bucket", "S3_BUCKET_NAME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.MaxAttempts <= 0 {
		log.Printf("Max attempts not set or invalid, using default '%d'", DefaultMaxAttempts)
		Cfg.App.MaxAttempts = DefaultMaxAttempts
	}
	if Cfg.Gemini.BaseURL == "" {
		Cfg.Gemini.BaseURL = DefaultGeminiBaseURL
	}
	if Cfg.Gemini.ChatModel == "" {
		Cfg.Gemini.ChatModel = DefaultGeminiChatModel
	}
	if Cfg.Gemini.ImageModel == "" {
		Cfg.Gemini.ImageModel = DefaultGeminiImageModel
	}
	if Cfg.Gemini.TimeoutSeconds <= 0 {
		Cfg.Gemini.TimeoutSeconds = DefaultScorerTimeoutSeconds
	}
	if Cfg.Storage.Type == "" {
		log.Println("Storage type not set, defaulting to 'log'")
		Cfg.Storage.Type = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth.Enabled のデフォルト値 (未設定なら true = 有効)
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Max Attempts: %d", Cfg.App.MaxAttempts)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
