package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"burpwatch/internal/models"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-yaml"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	BurpUI        BurpUIConfig        `yaml:"burpui"`
	Poller        PollerConfig        `yaml:"poller"`
	Tasks         TasksConfig         `yaml:"tasks"`
	Gatekeeper    GatekeeperConfig    `yaml:"gatekeeper"`
	Database      DatabaseConfig      `yaml:"database"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Metrics       MetricsConfig       `yaml:"metrics"`

	mu       sync.RWMutex
	watchers []chan<- struct{}
}

type ServerConfig struct {
	Port            int             `yaml:"port"`
	Host            string          `yaml:"host"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type BurpUIConfig struct {
	BaseURL        string          `yaml:"base_url"`
	Username       string          `yaml:"username"`
	Password       string          `yaml:"password"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
	ConnectTimeout time.Duration   `yaml:"connect_timeout"`
	FromUI         *bool           `yaml:"from_ui"`
	CacheBypass    bool            `yaml:"cache_bypass"`
	Endpoints      EndpointsConfig `yaml:"endpoints"`
}

// EndpointsConfig holds path templates relative to BaseURL. Placeholders are
// {server}, {client}, {backup} and {id}.
type EndpointsConfig struct {
	BackupRunning        string `yaml:"backup_running"`
	ServerBackupRunning  string `yaml:"server_backup_running"`
	ClientRunning        string `yaml:"client_running"`
	ServerClientRunning  string `yaml:"server_client_running"`
	RunningClients       string `yaml:"running_clients"`
	ServerRunningClients string `yaml:"server_running_clients"`
	AsyncArchive         string `yaml:"async_archive"`
	ServerAsyncArchive   string `yaml:"server_async_archive"`
	TaskStatus           string `yaml:"task_status"`
	Ping                 string `yaml:"ping"`
}

type PollerConfig struct {
	Scope              models.Scope  `yaml:"scope"`
	IdleInterval       time.Duration `yaml:"idle_interval"`
	FastInterval       time.Duration `yaml:"fast_interval"`
	ThrottleWindow     time.Duration `yaml:"throttle_window"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ReportMode         bool          `yaml:"report_mode"`
	NotRunningStatuses []int         `yaml:"not_running_statuses"`
	ErrorNotifyTimeout time.Duration `yaml:"error_notify_timeout"`
}

type TasksConfig struct {
	PollInterval      time.Duration `yaml:"poll_interval"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	CancelTimeout     time.Duration `yaml:"cancel_timeout"`
	TransientStatuses []int         `yaml:"transient_statuses"`
	DownloadDir       string        `yaml:"download_dir"`
}

type GatekeeperConfig struct {
	MaxActiveRestores int             `yaml:"max_active_restores"`
	MinFreeBytes      int64           `yaml:"min_free_bytes"`
	Rules             GatekeeperRules `yaml:"rules"`
}

type GatekeeperRules struct {
	BlockRestoresDuringBackup bool `yaml:"block_restores_during_backup"`
	RequireSpaceCheck         bool `yaml:"require_space_check"`
}

type DatabaseConfig struct {
	Path         string `yaml:"path"`
	HistoryLimit int    `yaml:"history_limit"`
	// RestoreRetention is how long finished restore records are kept. A
	// negative value keeps them forever.
	RestoreRetention time.Duration `yaml:"restore_retention"`
}

type NotificationsConfig struct {
	QueueSize      int            `yaml:"queue_size"`
	DefaultTimeout time.Duration  `yaml:"default_timeout"`
	FeedSize       int            `yaml:"feed_size"`
	Log            LogNotifConfig `yaml:"log"`
	Pushover       PushoverConfig `yaml:"pushover"`
}

type LogNotifConfig struct {
	Enabled bool `yaml:"enabled"`
}

type PushoverConfig struct {
	Token         string        `yaml:"token"`
	User          string        `yaml:"user"`
	Enabled       bool          `yaml:"enabled"`
	MinLevel      string        `yaml:"min_level"`
	ErrorPriority int           `yaml:"error_priority"`
	RetryInterval time.Duration `yaml:"retry_interval"`
	ExpireTime    time.Duration `yaml:"expire_time"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads the configuration file and starts watching it for changes.
func Load(configPath string) (*Config, error) {
	cfg, err := LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	go cfg.watchConfig(configPath)
	return cfg, nil
}

// LoadFile reads and validates the configuration without watching it.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes raw YAML, expands environment variables, fills in defaults
// and validates the result.
func Parse(data []byte) (*Config, error) {
	content := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.ensureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	return &config, nil
}

// Default returns a configuration with every default applied, used when no
// file is present.
func Default() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Server.RateLimit.RequestsPerSecond == 0 {
		c.Server.RateLimit.RequestsPerSecond = 20
	}
	if c.Server.RateLimit.Burst == 0 {
		c.Server.RateLimit.Burst = 40
	}

	if c.BurpUI.BaseURL == "" {
		c.BurpUI.BaseURL = "http://localhost:5000"
	}
	if c.BurpUI.RequestTimeout == 0 {
		c.BurpUI.RequestTimeout = 30 * time.Second
	}
	if c.BurpUI.ConnectTimeout == 0 {
		c.BurpUI.ConnectTimeout = 2 * time.Minute
	}
	if c.BurpUI.FromUI == nil {
		fromUI := true
		c.BurpUI.FromUI = &fromUI
	}
	c.BurpUI.Endpoints.applyDefaults()

	if c.Poller.Scope.Kind == "" {
		c.Poller.Scope.Kind = models.ScopeGlobal
	}
	if c.Poller.IdleInterval == 0 {
		c.Poller.IdleInterval = 180 * time.Second
	}
	if c.Poller.FastInterval == 0 {
		c.Poller.FastInterval = 5 * time.Second
	}
	if c.Poller.ThrottleWindow == 0 {
		c.Poller.ThrottleWindow = 5 * time.Second
	}
	if c.Poller.RequestTimeout == 0 {
		c.Poller.RequestTimeout = 30 * time.Second
	}
	if c.Poller.NotRunningStatuses == nil {
		c.Poller.NotRunningStatuses = []int{404}
	}
	if c.Poller.ErrorNotifyTimeout == 0 {
		c.Poller.ErrorNotifyTimeout = 10 * time.Second
	}

	if c.Tasks.PollInterval == 0 {
		c.Tasks.PollInterval = 2 * time.Second
	}
	if c.Tasks.RequestTimeout == 0 {
		c.Tasks.RequestTimeout = 30 * time.Second
	}
	if c.Tasks.CancelTimeout == 0 {
		c.Tasks.CancelTimeout = 10 * time.Second
	}
	if c.Tasks.TransientStatuses == nil {
		c.Tasks.TransientStatuses = []int{502, 503, 504}
	}
	if c.Tasks.DownloadDir == "" {
		c.Tasks.DownloadDir = "./restores"
	}

	if c.Gatekeeper.MaxActiveRestores == 0 {
		c.Gatekeeper.MaxActiveRestores = 2
	}

	if c.Database.Path == "" {
		c.Database.Path = "./data/burpwatch.db"
	}
	if c.Database.HistoryLimit == 0 {
		c.Database.HistoryLimit = 100
	}
	if c.Database.RestoreRetention == 0 {
		c.Database.RestoreRetention = 30 * 24 * time.Hour
	}

	if c.Notifications.QueueSize == 0 {
		c.Notifications.QueueSize = 64
	}
	if c.Notifications.DefaultTimeout == 0 {
		c.Notifications.DefaultTimeout = 5 * time.Second
	}
	if c.Notifications.FeedSize == 0 {
		c.Notifications.FeedSize = 50
	}
	if c.Notifications.Pushover.MinLevel == "" {
		c.Notifications.Pushover.MinLevel = string(models.LevelWarning)
	}
	if c.Notifications.Pushover.ErrorPriority == 0 {
		c.Notifications.Pushover.ErrorPriority = 1
	}
	if c.Notifications.Pushover.RetryInterval == 0 {
		c.Notifications.Pushover.RetryInterval = 60 * time.Second
	}
	if c.Notifications.Pushover.ExpireTime == 0 {
		c.Notifications.Pushover.ExpireTime = time.Hour
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (e *EndpointsConfig) applyDefaults() {
	setDefault := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}
	setDefault(&e.BackupRunning, "/api/clients/backup-running")
	setDefault(&e.ServerBackupRunning, "/api/clients/{server}/backup-running")
	setDefault(&e.ClientRunning, "/api/clients/running/{client}")
	setDefault(&e.ServerClientRunning, "/api/clients/{server}/running/{client}")
	setDefault(&e.RunningClients, "/api/clients/running")
	setDefault(&e.ServerRunningClients, "/api/clients/{server}/running")
	setDefault(&e.AsyncArchive, "/api/async/archive/{client}/{backup}")
	setDefault(&e.ServerAsyncArchive, "/api/async/{server}/archive/{client}/{backup}")
	setDefault(&e.TaskStatus, "/api/async/archive-status/{id}")
	setDefault(&e.Ping, "/api/misc/about")
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	u, err := url.Parse(c.BurpUI.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid burpui base_url: %q", c.BurpUI.BaseURL)
	}

	if err := c.Poller.Scope.Validate(); err != nil {
		return fmt.Errorf("invalid poller scope: %w", err)
	}

	if c.Poller.IdleInterval < 0 || c.Poller.FastInterval < 0 {
		return fmt.Errorf("poll intervals cannot be negative")
	}

	if c.Poller.FastInterval > c.Poller.IdleInterval {
		return fmt.Errorf("fast_interval (%s) must not exceed idle_interval (%s)",
			c.Poller.FastInterval, c.Poller.IdleInterval)
	}

	if c.Tasks.PollInterval < 0 {
		return fmt.Errorf("task poll_interval cannot be negative")
	}

	if !strings.Contains(c.BurpUI.Endpoints.TaskStatus, "{id}") {
		return fmt.Errorf("task_status endpoint must contain the {id} placeholder")
	}

	if c.Gatekeeper.MaxActiveRestores < 0 {
		return fmt.Errorf("max_active_restores cannot be negative")
	}

	if _, err := models.ParseLevel(c.Notifications.Pushover.MinLevel); err != nil {
		return fmt.Errorf("invalid pushover min_level: %w", err)
	}

	if p := c.Notifications.Pushover.ErrorPriority; p < -2 || p > 2 {
		return fmt.Errorf("pushover error_priority must be between -2 and 2")
	}

	if c.Notifications.Pushover.Enabled {
		if c.Notifications.Pushover.Token == "" || strings.HasPrefix(c.Notifications.Pushover.Token, "${") {
			return fmt.Errorf("pushover token is required when notifications are enabled")
		}
		if c.Notifications.Pushover.User == "" || strings.HasPrefix(c.Notifications.Pushover.User, "${") {
			return fmt.Errorf("pushover user is required when notifications are enabled")
		}
	}

	return nil
}

func (c *Config) ensureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
		c.Tasks.DownloadDir,
	}

	if c.Logging.File != "" {
		dirs = append(dirs, filepath.Dir(c.Logging.File))
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// WatchForChanges registers a channel to receive notifications when config changes
func (c *Config) WatchForChanges() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan struct{}, 1)
	c.watchers = append(c.watchers, ch)
	return ch
}

func (c *Config) watchConfig(configPath string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create config watcher", "error", err)
		return
	}
	defer watcher.Close()

	configDir := filepath.Dir(configPath)
	if err := watcher.Add(configDir); err != nil {
		slog.Error("failed to watch config directory", "error", err, "path", configDir)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) == filepath.Base(configPath) &&
				(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				slog.Info("config file changed, reloading", "file", configPath)

				// Editors often truncate then write.
				time.Sleep(100 * time.Millisecond)

				if err := c.reload(configPath); err != nil {
					slog.Error("failed to reload config", "error", err)
				} else {
					c.notifyWatchers()
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("config watcher error", "error", err)
		}
	}
}

func (c *Config) reload(configPath string) error {
	newConfig, err := LoadFile(configPath)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Server and database changes need a restart.
	c.BurpUI = newConfig.BurpUI
	c.Poller = newConfig.Poller
	c.Tasks = newConfig.Tasks
	c.Gatekeeper = newConfig.Gatekeeper
	c.Notifications = newConfig.Notifications
	c.Logging = newConfig.Logging

	slog.Info("configuration reloaded successfully")
	return nil
}

func (c *Config) notifyWatchers() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, watcher := range c.watchers {
		select {
		case watcher <- struct{}{}:
		default:
		}
	}
}

// GetServer returns a copy of the server configuration
func (c *Config) GetServer() ServerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Server
}

// GetBurpUI returns a copy of the burp-ui connection settings
func (c *Config) GetBurpUI() BurpUIConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BurpUI
}

// GetPoller returns a copy of the poller configuration
func (c *Config) GetPoller() PollerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p := c.Poller
	p.NotRunningStatuses = append([]int(nil), c.Poller.NotRunningStatuses...)
	return p
}

// GetTasks returns a copy of the task watcher configuration
func (c *Config) GetTasks() TasksConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t := c.Tasks
	t.TransientStatuses = append([]int(nil), c.Tasks.TransientStatuses...)
	return t
}

// GetGatekeeper returns a copy of the gatekeeper configuration
func (c *Config) GetGatekeeper() GatekeeperConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Gatekeeper
}

// GetDatabase returns a copy of the database configuration
func (c *Config) GetDatabase() DatabaseConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Database
}

// GetNotifications returns a copy of the notifications configuration
func (c *Config) GetNotifications() NotificationsConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// GetLogging returns a copy of the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logging
}

func (c *Config) GetMetrics() MetricsConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Metrics
}

// UIHeader reports whether requests should carry X-From-UI.
func (b BurpUIConfig) UIHeader() bool {
	return b.FromUI == nil || *b.FromUI
}
