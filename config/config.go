package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"os-visualizer/internal/schedulers"
)

type SchedulerConfig struct {
	Port           int    `env:"SCHEDULER_PORT"`
	LogDevelopment bool   `env:"SCHEDULER_LOG_DEVELOPMENT"`
	StaticDir      string `env:"SCHEDULER_STATIC_DIR"`

	RoundRobinTimeQuantum                    int   `env:"SCHEDULER_RR_TIME_QUANTUM"`
	MultilevelFeedbackQueueLevelsTimeQuantum []int `env:"SCHEDULER_MLFQ_LEVELS" envSeparator:","`
	MaxProcesses                             int   `env:"SCHEDULER_MAX_PROCESSES"`
	MaxBurstTime                             int   `env:"SCHEDULER_MAX_BURST_TIME"`
	MaxArrivalTime                           int   `env:"SCHEDULER_MAX_ARRIVAL_TIME"`

	Cache   CacheConfig
	Metrics MetricsConfig
}

// CacheConfig sizes the ristretto cache of computed schedules.
type CacheConfig struct {
	Enabled     bool  `env:"SCHEDULER_CACHE_ENABLED"`
	NumCounters int64 `env:"SCHEDULER_CACHE_NUM_COUNTERS"`
	MaxCost     int64 `env:"SCHEDULER_CACHE_MAX_COST"`
}

// MetricsConfig enables graphite export when GraphiteHost is set.
type MetricsConfig struct {
	GraphiteHost  string        `env:"SCHEDULER_GRAPHITE_HOST"`
	Prefix        string        `env:"SCHEDULER_METRICS_PREFIX"`
	FlushInterval time.Duration `env:"SCHEDULER_METRICS_FLUSH_INTERVAL"`
}

// Load reads config.yaml from the first of paths that has one, then applies
// variables from dotenvFile (if it exists) and the process environment.
// A missing config.yaml is not an error: defaults are used.
func Load(dotenvFile string, paths ...string) (*SchedulerConfig, error) {
	if dotenvFile != "" {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", dotenvFile, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &SchedulerConfig{}
	config.Port = v.GetInt("port")
	config.LogDevelopment = v.GetBool("log.development")
	config.StaticDir = v.GetString("static_dir")
	config.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	config.MultilevelFeedbackQueueLevelsTimeQuantum = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	config.MaxProcesses = v.GetInt("scheduler.max_processes")
	config.MaxBurstTime = v.GetInt("scheduler.max_burst_time")
	config.MaxArrivalTime = v.GetInt("scheduler.max_arrival_time")
	config.Cache = CacheConfig{
		Enabled:     v.GetBool("cache.enabled"),
		NumCounters: v.GetInt64("cache.num_counters"),
		MaxCost:     v.GetInt64("cache.max_cost"),
	}
	config.Metrics = MetricsConfig{
		GraphiteHost:  v.GetString("metrics.graphite_host"),
		Prefix:        v.GetString("metrics.prefix"),
		FlushInterval: v.GetDuration("metrics.flush_interval"),
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.development", false)
	v.SetDefault("static_dir", "")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4})
	v.SetDefault("scheduler.max_processes", 64)
	v.SetDefault("scheduler.max_burst_time", 1000)
	v.SetDefault("scheduler.max_arrival_time", 100000)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.num_counters", 10000)
	v.SetDefault("cache.max_cost", 1<<20)
	v.SetDefault("metrics.graphite_host", "")
	v.SetDefault("metrics.prefix", "os-visualizer")
	v.SetDefault("metrics.flush_interval", 10*time.Second)
}

// Limits are the request size caps shared by the HTTP api and the CLI.
func (c *SchedulerConfig) Limits() schedulers.Limits {
	return schedulers.Limits{
		MaxProcesses:   c.MaxProcesses,
		MaxBurstTime:   c.MaxBurstTime,
		MaxArrivalTime: c.MaxArrivalTime,
	}
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.New("scheduler.multilevel_feedback_queue.levels_time_quantum must not be empty")
	}
	for _, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum must be positive, got %d", q)
		}
	}
	if c.MaxProcesses <= 0 || c.MaxBurstTime <= 0 || c.MaxArrivalTime <= 0 {
		return errors.New("scheduler.max_processes, scheduler.max_burst_time and scheduler.max_arrival_time must be positive")
	}
	if c.Metrics.GraphiteHost != "" && c.Metrics.FlushInterval <= 0 {
		return errors.New("metrics.flush_interval must be positive when graphite is enabled")
	}
	return nil
}
