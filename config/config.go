package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Server        ServerConfig       `yaml:"server"`
	FeedAPI       FeedAPIConfig      `yaml:"feed_api"`
	Paging        PagingConfig       `yaml:"paging"`
	Views         ViewsConfig        `yaml:"views"`
	Notifications NotificationConfig `yaml:"notifications"`
	Audit         AuditConfig        `yaml:"audit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// FeedAPIConfig 는 원격 피드 관리 API 접속 정보다.
// Token 은 운영자 요청에 Authorization 헤더가 없을 때 사용하는 서비스 토큰이다.
type FeedAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

type PagingConfig struct {
	PostsPageSize      int `yaml:"posts_page_size"`
	EngagementPageSize int `yaml:"engagement_page_size"`
	// DedupeEngagement 가 true 이면 likes/comments/shares 탭에서 append 시 이미 본 ID 를 버린다.
	// 서버가 페이지 간 안정적인 정렬을 보장하지 못할 때만 켠다.
	DedupeEngagement bool `yaml:"dedupe_engagement"`
}

type ViewsConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type NotificationConfig struct {
	DedupeCapacity int `yaml:"dedupe_capacity"`
	MaxPending     int `yaml:"max_pending"`
}

// AuditConfig 는 모더레이션 결과를 Kafka 로 발행할지 여부를 정의한다.
// Brokers 는 비어 있으면 KAFKA_BOOTSTRAP_SERVERS 환경변수를 사용한다.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = &c
}

// Load 는 주어진 경로의 yaml 파일을 읽고 환경변수 오버라이드와 기본값을 적용한다.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 는 yaml 본문을 AppConfig 로 변환한다.
func Parse(data []byte) (AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	c.applyEnv()
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}

func (c *AppConfig) applyEnv() {
	if v := getEnv("FEED_API_BASE_URL"); v != "" {
		c.FeedAPI.BaseURL = v
	}
	if v := getEnv("FEED_API_TOKEN"); v != "" {
		c.FeedAPI.Token = v
	}
	if v := getEnv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getEnv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("KAFKA_BOOTSTRAP_SERVERS"); v != "" && c.Audit.Brokers == "" {
		c.Audit.Brokers = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.FeedAPI.BaseURL == "" {
		c.FeedAPI.BaseURL = "http://feed_service:8080"
	}
	if c.FeedAPI.Timeout <= 0 {
		c.FeedAPI.Timeout = 10 * time.Second
	}
	if c.Paging.PostsPageSize <= 0 {
		c.Paging.PostsPageSize = 20
	}
	if c.Paging.EngagementPageSize <= 0 {
		c.Paging.EngagementPageSize = 20
	}
	if c.Views.IdleTimeout <= 0 {
		c.Views.IdleTimeout = 30 * time.Minute
	}
	if c.Views.SweepInterval <= 0 {
		c.Views.SweepInterval = time.Minute
	}
	if c.Notifications.DedupeCapacity <= 0 {
		c.Notifications.DedupeCapacity = 1024
	}
	if c.Notifications.MaxPending <= 0 {
		c.Notifications.MaxPending = 50
	}
	if c.Audit.Topic == "" {
		c.Audit.Topic = "feed-admin.moderation.actions"
	}
}

// Validate 는 기본값 적용 이후에도 사용할 수 없는 설정을 걸러낸다.
func (c AppConfig) Validate() error {
	if !strings.HasPrefix(c.FeedAPI.BaseURL, "http://") && !strings.HasPrefix(c.FeedAPI.BaseURL, "https://") {
		return fmt.Errorf("feed_api.base_url must be an http(s) URL: %q", c.FeedAPI.BaseURL)
	}
	if c.Audit.Enabled && c.Audit.Brokers == "" {
		return errors.New("audit.enabled requires audit.brokers or KAFKA_BOOTSTRAP_SERVERS")
	}
	return nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
