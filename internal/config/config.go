package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Payment   PaymentConfig   `yaml:"payment"   validate:"required"`
	Referral  ReferralConfig  `yaml:"referral"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Redis     RedisConfig     `yaml:"redis"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"gornostyle" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type BookingConfig struct {
	HoldTTL time.Duration `yaml:"hold_ttl" env:"BOOKING_HOLD_TTL" env-default:"5m" validate:"required,gt=0"`
}

type PaymentConfig struct {
	DefaultProvider string          `yaml:"default_provider" env:"PAYMENT_DEFAULT_PROVIDER" env-default:"tokenbank" validate:"required,oneof=tokenbank stripe"`
	TokenBank       TokenBankConfig `yaml:"tokenbank"`
	Stripe          StripeConfig    `yaml:"stripe"`
}

// TokenBankConfig - банк, подписывающий уведомления JWT. Пустой ключ отключает проверку подписи.
type TokenBankConfig struct {
	PublicKeyPEM string        `yaml:"public_key_pem" env:"TOKENBANK_PUBLIC_KEY_PEM" env-default:""`
	InitURL      string        `yaml:"init_url"       env:"TOKENBANK_INIT_URL"       env-default:""`
	APIToken     string        `yaml:"api_token"      env:"TOKENBANK_API_TOKEN"      env-default:""`
	MerchantID   string        `yaml:"merchant_id"    env:"TOKENBANK_MERCHANT_ID"    env-default:""`
	SuccessURL   string        `yaml:"success_url"    env:"TOKENBANK_SUCCESS_URL"    env-default:""`
	FailURL      string        `yaml:"fail_url"       env:"TOKENBANK_FAIL_URL"       env-default:""`
	Timeout      time.Duration `yaml:"timeout"        env:"TOKENBANK_TIMEOUT"        env-default:"10s"`
}

type StripeConfig struct {
	SecretKey     string `yaml:"secret_key"     env:"STRIPE_SECRET_KEY"     env-default:""`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	SuccessURL    string `yaml:"success_url"    env:"STRIPE_SUCCESS_URL"    env-default:""`
	CancelURL     string `yaml:"cancel_url"     env:"STRIPE_CANCEL_URL"     env-default:""`
	Currency      string `yaml:"currency"       env:"STRIPE_CURRENCY"       env-default:"rub"`
}

// ReferralConfig - суммы бонусов в рублях.
type ReferralConfig struct {
	ReferrerBonus string `yaml:"referrer_bonus" env:"REFERRAL_REFERRER_BONUS" env-default:"500"`
	RefereeBonus  string `yaml:"referee_bonus"  env:"REFERRAL_REFEREE_BONUS"  env-default:"500"`
}

func (c ReferralConfig) Bonuses() (referrer, referee decimal.Decimal, err error) {
	if referrer, err = decimal.NewFromString(c.ReferrerBonus); err != nil {
		return referrer, referee, fmt.Errorf("referrer bonus: %w", err)
	}
	if referee, err = decimal.NewFromString(c.RefereeBonus); err != nil {
		return referrer, referee, fmt.Errorf("referee bonus: %w", err)
	}
	if referrer.IsNegative() || referee.IsNegative() {
		return referrer, referee, errors.New("referral bonuses must not be negative")
	}
	return referrer, referee, nil
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// RabbitMQConfig - публикация доменных событий. Пустой URL отключает публикацию.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"gornostyle.events"`
}

// RedisConfig - кэш листинга групп. Пустой адрес отключает кэш.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	GroupTTL time.Duration `yaml:"group_ttl" env:"REDIS_GROUP_TTL" env-default:"30s"`
}

func MustLoad() *Config {
	// .env нужен только локально
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("failed to load .env: %v", err))
	}

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
