package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string

	// APIBaseURL is the root of the Early Warning System backend. All
	// endpoints are rooted at APIBaseURL + "/api".
	APIBaseURL string

	// StateDir holds the durable local state (session record, tutorial
	// flags). Scoped to the current OS user profile; not shared across
	// machines.
	StateDir string

	RollbarToken string
}

// NewConfig loads configuration from defaults, an optional config/.env.<env>
// file and the environment.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "AEWS")
	conf.SetDefault("apiBaseURL", "http://localhost:8000")
	conf.SetDefault("stateDir", defaultStateDir("aews"))

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	testMode := false
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     testMode,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		APIBaseURL:   strings.TrimRight(conf.GetString("apiBaseURL"), "/"),
		StateDir:     conf.GetString("stateDir"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
}

func defaultStateDir(app string) string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, app)
	}
	return filepath.Join(".", "."+app)
}
