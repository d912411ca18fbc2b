package config

import "fmt"

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// VNPayConfig holds the merchant credentials and endpoints for the VNPay
// hosted-payment integration. TmnCode and HashSecret are issued by the
// provider; the application must refuse to start without them.
type VNPayConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	TmnCode       string `mapstructure:"tmn_code"`
	HashSecret    string `mapstructure:"hash_secret"`
	ReturnURL     string `mapstructure:"return_url"`
	Version       string `mapstructure:"version"`
	Locale        string `mapstructure:"locale"`
	CurrencyCode  string `mapstructure:"currency_code"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

func (v *VNPayConfig) Validate() error {
	if v.TmnCode == "" {
		return fmt.Errorf("vnpay tmn_code is required")
	}
	if v.HashSecret == "" {
		return fmt.Errorf("vnpay hash_secret is required")
	}
	if v.BaseURL == "" {
		return fmt.Errorf("vnpay base_url is required")
	}
	if v.ReturnURL == "" {
		return fmt.Errorf("vnpay return_url is required")
	}
	if v.ExpireMinutes <= 0 {
		return fmt.Errorf("vnpay expire_minutes must be positive")
	}
	return nil
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}
