package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Input kinds
const (
	KindBallot = "ballot"
	KindDuel   = "duel"
)

// DefaultSQLitePath is used by -serve when no database URL is given.
const DefaultSQLitePath = "quickly-tally.db"

type Config struct {
	Serve         bool
	Port          int
	DatabaseURL   string
	DatabaseType  string
	Input         string
	InputKind     string
	Skip          int
	Method        string
	ReceiptKey    string
	ReceiptColumn int
	History       int
	Issue         int
	EnvFile       string
}

// DriverName returns the database/sql driver for DatabaseType.
func (c Config) DriverName() string {
	return c.DatabaseType
}

// ParseFlags validates flags and fills the gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Mode
	fs.BoolVar(&cfg.Serve, "serve", false, "Run the HTTP API")
	fs.IntVar(&cfg.History, "history", 0, "List the N most recent archived results")
	fs.IntVar(&cfg.Issue, "issue", 0, "Print N new voter receipt keys with their digests")

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Election input
	fs.StringVar(&cfg.Input, "i", "", "Ballot or duel CSV file")
	fs.StringVar(&cfg.InputKind, "k", "", "Input kind (ballot or duel)")
	fs.IntVar(&cfg.Skip, "s", -1, "Leading metadata columns in a ballot file")
	fs.StringVar(&cfg.Method, "m", "", "Voting method, or all")

	// Receipt check (prefer env for the key)
	fs.StringVar(&cfg.ReceiptKey, "check", "", "Voter key to look up (prefer env)")
	fs.IntVar(&cfg.ReceiptColumn, "check-col", 0, "Metadata column holding receipt digests")

	fs.StringVar(&cfg.EnvFile, "env", "", "Env file to load (default .env if present)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Input == "" {
		cfg.Input = os.Getenv("TALLY_INPUT")
	}
	if cfg.InputKind == "" {
		cfg.InputKind = os.Getenv("TALLY_INPUT_KIND")
		if cfg.InputKind == "" {
			cfg.InputKind = KindBallot
		}
	}
	if cfg.InputKind != KindBallot && cfg.InputKind != KindDuel {
		return Config{}, fmt.Errorf("unsupported input kind %q", cfg.InputKind)
	}
	if cfg.Skip < 0 {
		cfg.Skip = 0
		if skipStr := os.Getenv("TALLY_SKIP"); skipStr != "" {
			skip, err := strconv.Atoi(skipStr)
			if err != nil || skip < 0 {
				return Config{}, errors.New("invalid TALLY_SKIP env variable")
			}
			cfg.Skip = skip
		}
	}
	if cfg.Method == "" {
		cfg.Method = os.Getenv("TALLY_METHOD")
		if cfg.Method == "" {
			cfg.Method = "all"
		}
	}
	if cfg.ReceiptKey == "" {
		cfg.ReceiptKey = os.Getenv("TALLY_RECEIPT_KEY")
	}

	if cfg.History < 0 || cfg.Issue < 0 {
		return Config{}, errors.New("-history and -issue need a positive count")
	}

	// Mode-specific requirements
	switch {
	case cfg.Serve:
		if cfg.DatabaseURL == "" {
			if cfg.DatabaseType == DatabasePostgres {
				return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
			}
			cfg.DatabaseURL = DefaultSQLitePath
		}
	case cfg.History > 0:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for -history (use -d or DATABASE_URL env)")
		}
	case cfg.Issue > 0:
	default:
		if cfg.Input == "" {
			return Config{}, errors.New("input file required (use -i or TALLY_INPUT env)")
		}
		if cfg.ReceiptKey != "" && cfg.InputKind != KindBallot {
			return Config{}, errors.New("receipt check needs a ballot file")
		}
	}

	return cfg, nil
}

// loadEnvFile loads path, or .env when path is empty and the file exists.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
