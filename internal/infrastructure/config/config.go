package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖；
// 所有键都有默认值，配置文件可以不存在
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Storage StorageConfig `mapstructure:"storage"`
	Cover   CoverConfig   `mapstructure:"cover"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Swagger SwaggerConfig `mapstructure:"swagger"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Mode            string        `mapstructure:"mode" validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"` // console | json
	Output string `mapstructure:"output" validate:"required"`           // stdout | stderr | /path/to/file
}

type CORSConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Origins []string      `mapstructure:"origins"`
	Methods []string      `mapstructure:"methods"`
	Headers []string      `mapstructure:"headers"`
	MaxAge  time.Duration `mapstructure:"max_age"`
}

// StorageConfig 对象存储(封面上传)
type StorageConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=gcs none"`
	Bucket          string        `mapstructure:"bucket"`
	ProjectID       string        `mapstructure:"project_id"`
	Endpoint        string        `mapstructure:"endpoint"`   // 模拟器地址,设置后不做认证
	PublicURL       string        `mapstructure:"public_url"` // 为空时使用Endpoint
	CredentialsFile string        `mapstructure:"credentials_file"`
	MaxUploadSize   int64         `mapstructure:"max_upload_size" validate:"gt=0"`
	Timeout         time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Breaker         BreakerConfig `mapstructure:"breaker"`
}

// PublicBaseURL 拼接公开地址时使用的前缀
func (s StorageConfig) PublicBaseURL() string {
	if s.PublicURL != "" {
		return strings.TrimSuffix(s.PublicURL, "/")
	}
	return strings.TrimSuffix(s.Endpoint, "/")
}

type BreakerConfig struct {
	MaxFailures int           `mapstructure:"max_failures" validate:"min=1"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// CoverConfig 占位封面图
type CoverConfig struct {
	BaseURL  string `mapstructure:"base_url" validate:"required,url"`
	Width    int    `mapstructure:"width" validate:"min=1"`
	Height   int    `mapstructure:"height" validate:"min=1"`
	Category string `mapstructure:"category" validate:"required"`
}

type SeedConfig struct {
	RandomCovers bool `mapstructure:"random_covers"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name" validate:"required"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"min=0,max=1"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"startswith=/"`
}

type SwaggerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// setDefaults 默认值(端口3000、5MB上传上限、400x600封面)
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("cors.methods", []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"})
	v.SetDefault("cors.headers", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"})
	v.SetDefault("cors.max_age", 12*time.Hour)

	v.SetDefault("storage.driver", "gcs")
	v.SetDefault("storage.bucket", "book-covers")
	v.SetDefault("storage.max_upload_size", 5*1024*1024)
	v.SetDefault("storage.timeout", 30*time.Second)
	v.SetDefault("storage.breaker.max_failures", 5)
	v.SetDefault("storage.breaker.timeout", 30*time.Second)

	v.SetDefault("cover.base_url", "https://loremflickr.com")
	v.SetDefault("cover.width", 400)
	v.SetDefault("cover.height", 600)
	v.SetDefault("cover.category", "books")

	v.SetDefault("seed.random_covers", true)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "booklist-api")
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.insecure", true)
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("swagger.enabled", true)
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml（文件可选）
// 2. 通过环境变量BOOKLIST_ENV指定环境（如config.prod.yaml）
// 3. 环境变量覆盖（如BOOKLIST_STORAGE_BUCKET → storage.bucket）
// 4. PORT覆盖server.port
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// 设置配置文件路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 环境特定配置（如config.prod.yaml）
	if env := os.Getenv("BOOKLIST_ENV"); env != "" {
		v.SetConfigName("config." + env)
	}

	// 读取配置文件，文件不存在时只使用默认值和环境变量
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（BOOKLIST_STORAGE_BUCKET → storage.bucket）
	v.SetEnvPrefix("BOOKLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "BOOKLIST_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败: %w", err)
	}

	// 解析到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 配置验证
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 配置校验
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("无效的配置项 %s: 不满足 %s", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("配置校验失败: %w", err)
	}

	if cfg.Storage.Driver == "gcs" && cfg.Storage.Bucket == "" {
		return fmt.Errorf("storage.driver=gcs 时必须设置 storage.bucket")
	}

	return nil
}
