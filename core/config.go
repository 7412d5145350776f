package core

import (
	"fmt"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string

		SecretKey        []byte
		DefaultFromEmail mail.Address
		SendgridAPIKey   string
		RollbarToken     string

		Server   ServerConfig
		Database DatabaseConfig

		// CourseEndDates maps a grade to the fixed end-of-program date used
		// for tuition accrual.
		CourseEndDates map[int]time.Time
	}

	ServerConfig struct {
		Host               string
		Port               string
		AllowedOrigins     []string
		JWTExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine     string
		Name       string
		User       string
		Password   string
		Host       string
		Port       string
		DisableTLS bool
	}
)

func (c ServerConfig) Address() string   { return net.JoinHostPort(c.Host, c.Port) }
func (c DatabaseConfig) Address() string { return net.JoinHostPort(c.Host, c.Port) }

// NewConfig loads the app configuration from defaults, an optional
// config/.env.<env> file and environment variables.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Academia")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "q23=z&u0xh2(h!x)#*c2(#yg4h^$cegm2emy+57-wer)enb$")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")

	v.SetDefault("serverHost", "0.0.0.0")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("allowedOrigins", "*")
	v.SetDefault("jwtExpirationDelta", 30*time.Minute)

	v.SetDefault("databaseEngine", "postgres")
	v.SetDefault("databaseName", "academia")
	v.SetDefault("databaseUser", "postgres")
	v.SetDefault("databasePassword", "postgres")
	v.SetDefault("databaseHost", "localhost")
	v.SetDefault("databasePort", "5432")
	v.SetDefault("databaseDisableTLS", true)

	// grade -> end-of-program date (grades 6-10 run until end of Feb 2026)
	v.SetDefault("courseEndDates", map[string]string{
		"6":  "2026-02-28",
		"7":  "2026-02-28",
		"8":  "2026-02-28",
		"9":  "2026-02-28",
		"10": "2026-02-28",
	})

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	endDates, err := parseCourseEndDates(v.GetStringMapString("courseEndDates"))
	if err != nil {
		return nil, err
	}

	conf := &Config{
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		Env:      env,
		AppName:  v.GetString("appName"),
		Build:    v.GetString("build"),

		SecretKey:        []byte(v.GetString("secretKey")),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),

		Server: ServerConfig{
			Host:               v.GetString("serverHost"),
			Port:               v.GetString("serverPort"),
			AllowedOrigins:     strings.Split(v.GetString("allowedOrigins"), ","),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:     v.GetString("databaseEngine"),
			Name:       v.GetString("databaseName"),
			User:       v.GetString("databaseUser"),
			Password:   v.GetString("databasePassword"),
			Host:       v.GetString("databaseHost"),
			Port:       v.GetString("databasePort"),
			DisableTLS: v.GetBool("databaseDisableTLS"),
		},
		CourseEndDates: endDates,
	}
	return conf, nil
}

func parseCourseEndDates(raw map[string]string) (map[int]time.Time, error) {
	dates := make(map[int]time.Time, len(raw))
	for key, val := range raw {
		grade, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Wrapf(err, "courseEndDates: invalid grade %q", key)
		}
		date, err := time.Parse("2006-01-02", val)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("courseEndDates: invalid date %q for grade %d", val, grade))
		}
		dates[grade] = date
	}
	return dates, nil
}
