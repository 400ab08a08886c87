// Package config loads declarative container definitions from a YAML file,
// with Laravel-style environment placeholders resolved through .env files.
//
//	parameters:
//	  app.name: ${APP_NAME:demo}
//
//	services:
//	  logger:
//	    type: app.logger
//	    singleton: true
//	  log:
//	    alias: logger
//
//	defs, err := config.Load("services.yaml")
//	err = defs.Apply(c)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-container/container"
)

// Service describes one container registration.
//
// A service either binds a described type (type + singleton) or aliases
// another service (alias); the two forms are mutually exclusive. An empty
// type means the service id names the described type itself.
type Service struct {
	Type      string `yaml:"type"`
	Singleton bool   `yaml:"singleton"`
	Alias     string `yaml:"alias"`
}

// File is the parsed definitions file.
type File struct {
	// Parameters are plain values registered as resolved instances, after
	// ${VAR} / ${VAR:default} expansion against the environment.
	Parameters map[string]string `yaml:"parameters"`

	// Services are bindings and aliases, keyed by abstract identifier.
	Services map[string]Service `yaml:"services"`
}

// Load reads .env files (non-fatal if missing — production usually has real
// environment variables instead) and then parses the YAML definitions file at
// path, expanding environment placeholders in parameter values.
func Load(path string, envFiles ...string) (*File, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	_ = godotenv.Load(files...)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	for key, value := range f.Parameters {
		f.Parameters[key] = expand(value)
	}
	return &f, nil
}

// Apply registers the file's parameters, bindings and aliases into c.
// Concrete types are not validated here: a service naming an undescribed type
// fails on first resolution, not at apply time.
func (f *File) Apply(c *container.Container) error {
	for id, value := range f.Parameters {
		c.Instance(id, value)
	}

	for id, svc := range f.Services {
		if svc.Alias != "" {
			if svc.Type != "" || svc.Singleton {
				return fmt.Errorf("config: service [%s]: alias and type/singleton are mutually exclusive", id)
			}
			c.Alias(svc.Alias, id)
			continue
		}

		var concrete any
		if svc.Type != "" && svc.Type != id {
			concrete = svc.Type
		}
		if svc.Singleton {
			c.Singleton(id, concrete)
		} else {
			c.Register(id, concrete)
		}
	}
	return nil
}

// ── Env helpers ───────────────────────────────────────────────────────────────

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

// expand substitutes ${VAR} and ${VAR:default} with environment values.
func expand(s string) string {
	return os.Expand(s, func(ref string) string {
		name, fallback, hasFallback := strings.Cut(ref, ":")
		if v := os.Getenv(name); v != "" {
			return v
		}
		if hasFallback {
			return fallback
		}
		return ""
	})
}
