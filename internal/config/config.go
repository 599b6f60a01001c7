// internal/config/config.go

// Package config supplies environment-derived defaults that sit
// beneath the CLI flags: flag > environment > built-in default.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized for defaults.
const (
	EnvMaxGap            = "OPFIND_MAX_GAP"
	EnvRequireSameStrand = "OPFIND_REQUIRE_SAME_STRAND"
	EnvOutput            = "OPFIND_OUT"
	EnvFormat            = "OPFIND_FORMAT"
	EnvSQLite            = "OPFIND_SQLITE"
	EnvLogLevel          = "OPFIND_LOG_LEVEL"
)

// Defaults are the effective flag defaults after applying the
// environment (and an optional .env file) over the built-ins.
type Defaults struct {
	MaxGap            int
	RequireSameStrand bool
	Output            string
	Format            string
	SQLitePath        string
	LogLevel          string
}

// Load reads .env (if present) and the OPFIND_* variables. Malformed
// values do not abort startup; they fall back to the built-in default
// and are reported in the returned warnings.
func Load() (Defaults, []string) {
	d := Defaults{
		MaxGap:   50,
		Output:   "-",
		Format:   "text",
		LogLevel: "info",
	}
	var warns []string

	// Missing .env is fine; variables may come straight from the
	// process environment.
	_ = godotenv.Load()

	if v := os.Getenv(EnvMaxGap); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			warns = append(warns, fmt.Sprintf("ignoring %s=%q: want a non-negative integer", EnvMaxGap, v))
		} else {
			d.MaxGap = n
		}
	}
	if v := os.Getenv(EnvRequireSameStrand); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warns = append(warns, fmt.Sprintf("ignoring %s=%q: want a boolean", EnvRequireSameStrand, v))
		} else {
			d.RequireSameStrand = b
		}
	}
	if v := os.Getenv(EnvOutput); v != "" {
		d.Output = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		d.Format = v
	}
	if v := os.Getenv(EnvSQLite); v != "" {
		d.SQLitePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		d.LogLevel = v
	}
	return d, warns
}
