package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	FrontendDir    string `mapstructure:"frontend_dir"`
	TrustedProxies string `mapstructure:"trusted_proxies"`
	CORSOrigins    string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Type        string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename    string `mapstructure:"filename"` // for sqlite
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Name        string `mapstructure:"name"` // database name
	SSL         bool   `mapstructure:"ssl"`
	SeedSamples bool   `mapstructure:"seed_samples"`
}

type UploadConfig struct {
	Path         string `mapstructure:"path"`
	URLPrefix    string `mapstructure:"url_prefix"`
	MaxSizeMB    int    `mapstructure:"max_size_mb"`
	CacheControl string `mapstructure:"cache_control"`
}

type RateLimitConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	WriteRPS   float64 `mapstructure:"write_rps"`
	WriteBurst int     `mapstructure:"write_burst"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// MaxUploadBytes 返回单个图片允许的最大字节数
func (u UploadConfig) MaxUploadBytes() int64 {
	mb := u.MaxSizeMB
	if mb <= 0 {
		mb = 5
	}
	return int64(mb) * 1024 * 1024
}

// Get 获取当前配置的快照（无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

// Set 直接替换当前配置，主要供测试使用
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "3001")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.frontend_dir", "")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/movie_catalog.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "movie_collection")
	v.SetDefault("database.ssl", false)
	v.SetDefault("database.seed_samples", true)
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.max_size_mb", 5)
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.write_rps", 5)
	v.SetDefault("ratelimit.write_burst", 10)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "movie_catalog")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 环境变量覆盖：yaml 中的 server.port 对应 MOVIE_CATALOG_SERVER_PORT
	v.SetEnvPrefix("MOVIE_CATALOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	if !strings.HasSuffix(tempConfig.Upload.URLPrefix, "/") {
		tempConfig.Upload.URLPrefix += "/"
	}

	appConfig.Store(&tempConfig)
}
