package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Schedule ScheduleConfig
	Export   ExportConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
	LogLevel string
}

// DBConfig describes the in-memory session database. Name only keeps
// separate sessions apart inside one process.
type DBConfig struct {
	Name     string
	LogLevel string
}

type ScheduleConfig struct {
	DayStart        string // Format: HH:MM
	WindowDays      int
	DefaultDuration int // minutes
	Strategy        string
	RandomSeed      int64
}

type ExportConfig struct {
	Dir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_NAME", "homecare")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("SCHEDULE_DAY_START", "09:00")
	v.SetDefault("SCHEDULE_WINDOW_DAYS", 7)
	v.SetDefault("SCHEDULE_DEFAULT_DURATION", 60)
	v.SetDefault("SCHEDULE_STRATEGY", "random")
	v.SetDefault("SCHEDULE_RANDOM_SEED", 0)
	v.SetDefault("EXPORT_DIR", ".")
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file if it exists. Environment
// variables always win over the file.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			Timezone: v.GetString("APP_TIMEZONE"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Name:     v.GetString("DB_NAME"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Schedule: ScheduleConfig{
			DayStart:        v.GetString("SCHEDULE_DAY_START"),
			WindowDays:      v.GetInt("SCHEDULE_WINDOW_DAYS"),
			DefaultDuration: v.GetInt("SCHEDULE_DEFAULT_DURATION"),
			Strategy:        v.GetString("SCHEDULE_STRATEGY"),
			RandomSeed:      v.GetInt64("SCHEDULE_RANDOM_SEED"),
		},
		Export: ExportConfig{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}

	if _, err := time.Parse("15:04", config.Schedule.DayStart); err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_DAY_START %q, use HH:MM", config.Schedule.DayStart)
	}
	if config.Schedule.WindowDays < 1 {
		return nil, fmt.Errorf("SCHEDULE_WINDOW_DAYS must be at least 1, got %d", config.Schedule.WindowDays)
	}
	// Same slot bounds as a request: 15 to 240 minutes in steps of 15.
	if d := config.Schedule.DefaultDuration; d < 15 || d > 240 || d%15 != 0 {
		return nil, fmt.Errorf("SCHEDULE_DEFAULT_DURATION must be 15 to 240 in steps of 15, got %d", d)
	}

	return config, nil
}

// Location resolves APP_TIMEZONE; "Local" and "" map to the host zone.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
