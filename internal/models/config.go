package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type BusinessHoursConfig struct {
	Open  string `mapstructure:"open"`  // "HH:MM", 24-hour
	Close string `mapstructure:"close"` // "HH:MM", 24-hour
}

type SeedConfig struct {
	Customers    int `mapstructure:"customers"`
	MenuItems    int `mapstructure:"menu_items"`
	Days         int `mapstructure:"days"`
	OrdersPerDay int `mapstructure:"orders_per_day"`
}

type Config struct {
	Database      DatabaseConfig      `mapstructure:"database"`
	BusinessHours BusinessHoursConfig `mapstructure:"business_hours"`
	SlotInterval  time.Duration       `mapstructure:"slot_interval"`
	TopItemsLimit int                 `mapstructure:"top_items_limit"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	EventTopic      string `mapstructure:"event_topic"`

	OutputFolder string `mapstructure:"output_folder"`
	S3Bucket     string `mapstructure:"s3_bucket"`
	S3Region     string `mapstructure:"s3_region"`

	Seed SeedConfig `mapstructure:"seed"`
}

// ConnString builds a pgx-compatible connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("business_hours.open", "07:00")
	viper.SetDefault("business_hours.close", "19:00")
	viper.SetDefault("slot_interval", "15m")
	viper.SetDefault("top_items_limit", 5)
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("event_topic", "order_events")
	viper.SetDefault("output_folder", "output")
	viper.SetDefault("seed.customers", 50)
	viper.SetDefault("seed.menu_items", 25)
	viper.SetDefault("seed.days", 14)
	viper.SetDefault("seed.orders_per_day", 40)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
