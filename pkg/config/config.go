package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Settings struct {
	APIAddress string `env:"API_ADDRESS" envDefault:":8080"`

	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"taskstars"`

	JWTSecret string `env:"JWT_SECRET"`
	Timezone  string `env:"TIMEZONE" envDefault:"UTC"`

	MailMeterScale  float64       `env:"MAIL_METER_SCALE" envDefault:"0.5"`
	AccountCacheTTL time.Duration `env:"ACCOUNT_CACHE_TTL" envDefault:"30m"`

	EmailRateLimit      int           `env:"EMAIL_RATE_LIMIT" envDefault:"5"`
	EmailRateWindow     time.Duration `env:"EMAIL_RATE_WINDOW" envDefault:"1h"`
	VerificationCodeTTL time.Duration `env:"VERIFICATION_CODE_TTL" envDefault:"15m"`

	SESRegion    string `env:"SES_REGION" envDefault:"us-east-1"`
	SESFromEmail string `env:"SES_FROM_EMAIL"`
	SESFromName  string `env:"SES_FROM_NAME" envDefault:"TaskStars"`

	ProofVerifierURL     string        `env:"PROOF_VERIFIER_URL"`
	ProofVerifierTimeout time.Duration `env:"PROOF_VERIFIER_TIMEOUT" envDefault:"10s"`
}

type Config struct {
	settings Settings
}

// New loads ./configs/.env once (if present) and parses the environment.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		s, err := env.ParseAs[Settings]()
		if err != nil {
			log.Fatal("parsing envs error: ", err)
		}
		instance = &Config{settings: s}
	})
	return instance
}

func (c *Config) Settings() Settings {
	return c.settings
}

// Location resolves TIMEZONE, falling back to UTC for unknown names.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.settings.Timezone)
	if err != nil {
		log.Printf("unknown timezone %q, using UTC", c.settings.Timezone)
		return time.UTC
	}
	return loc
}
