// Package config parses server and client settings from flags, with
// KLOZE_* environment variables (optionally from a .env file) as defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/klozestickers/credits/internal/storage"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "KLOZE_"

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// env resolves KLOZE_<name> defaults.
type env func(string) string

func (e env) str(name, def string) string {
	if v := e(EnvPrefix + name); v != "" {
		return v
	}
	return def
}

func (e env) dur(name string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(e(EnvPrefix + name)); err == nil {
		return d
	}
	return def
}

func (e env) i64(name string, def int64) int64 {
	if n, err := strconv.ParseInt(e(EnvPrefix+name), 10, 64); err == nil {
		return n
	}
	return def
}

func (e env) flag(name string, def bool) bool {
	if b, err := strconv.ParseBool(e(EnvPrefix + name)); err == nil {
		return b
	}
	return def
}

// Server holds kloze-server settings.
type Server struct {
	Addr          string
	DSN           string
	DBMaxConns    int
	JWTKey        string
	AccessTTL     time.Duration
	TLSCert       string
	TLSKey        string
	Dev           bool
	PoliciesPath  string
	Location      string
	SignupBonus   int64
	DailyBonus    int64
	AdReward      int64
	MaxGuestMerge int64
}

// ParseServer parses args with defaults taken from getenv.
func ParseServer(args []string, getenv func(string) string, out io.Writer) (Server, error) {
	e := env(getenv)
	var c Server
	set := flag.NewFlagSet("kloze-server", flag.ContinueOnError)
	set.SetOutput(out)
	set.StringVar(&c.Addr, "addr", e.str("ADDR", ":8443"), "listen address")
	set.StringVar(&c.DSN, "dsn", e.str("DSN", ""), "PostgreSQL DSN")
	set.IntVar(&c.DBMaxConns, "db-max-conns", int(e.i64("DB_MAX_CONNS", 0)), "connection pool size; 0 keeps the pgx default")
	set.StringVar(&c.JWTKey, "jwt-key", e.str("JWT_KEY", ""), "HS256 signing key (required)")
	set.DurationVar(&c.AccessTTL, "access-ttl", e.dur("ACCESS_TTL", time.Hour), "access token TTL")
	set.StringVar(&c.TLSCert, "tls-cert", e.str("TLS_CERT", ""), "TLS certificate (PEM); empty serves plaintext")
	set.StringVar(&c.TLSKey, "tls-key", e.str("TLS_KEY", ""), "TLS private key (PEM)")
	set.BoolVar(&c.Dev, "dev", e.flag("DEV", false), "enable server reflection (dev only)")
	set.StringVar(&c.PoliciesPath, "policies", e.str("POLICIES", ""), "rate-limit policy YAML overlay")
	set.StringVar(&c.Location, "location", e.str("LOCATION", "UTC"), "IANA time zone for daily bonus days")
	set.Int64Var(&c.SignupBonus, "signup-bonus", e.i64("SIGNUP_BONUS", 3), "credits granted on registration")
	set.Int64Var(&c.DailyBonus, "daily-bonus", e.i64("DAILY_BONUS", 1), "credits per daily bonus claim")
	set.Int64Var(&c.AdReward, "ad-reward", e.i64("AD_REWARD", 1), "credits per rewarded ad")
	set.Int64Var(&c.MaxGuestMerge, "max-guest-merge", e.i64("MAX_GUEST_MERGE", 50), "cap on guest credits merged at login")
	if err := set.Parse(args); err != nil {
		return Server{}, err
	}
	return c, c.Validate()
}

// Validate reports every problem at once.
func (c Server) Validate() error {
	var problems []error
	if c.DSN == "" {
		problems = append(problems, errors.New("missing dsn (-dsn or KLOZE_DSN)"))
	}
	if c.JWTKey == "" {
		problems = append(problems, errors.New("missing jwt signing key (-jwt-key or KLOZE_JWT_KEY)"))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		problems = append(problems, errors.New("tls-cert and tls-key must be set together"))
	}
	if c.DBMaxConns < 0 {
		problems = append(problems, errors.New("db-max-conns must not be negative"))
	}
	if c.AccessTTL <= 0 {
		problems = append(problems, errors.New("access-ttl must be positive"))
	}
	if _, err := time.LoadLocation(c.Location); err != nil {
		problems = append(problems, fmt.Errorf("location: %w", err))
	}
	for name, v := range map[string]int64{
		"signup-bonus": c.SignupBonus, "daily-bonus": c.DailyBonus, "ad-reward": c.AdReward, "max-guest-merge": c.MaxGuestMerge,
	} {
		if v < 0 {
			problems = append(problems, fmt.Errorf("%s must not be negative", name))
		}
	}
	return errors.Join(problems...)
}

// Loc returns the configured location; call after Validate.
func (c Server) Loc() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Client holds kloze CLI settings shared by all subcommands.
type Client struct {
	Addr          string
	CACert        string
	Insecure      bool
	Plaintext     bool
	DataDir       string
	Timeout       time.Duration
	EffectTimeout time.Duration
	PolicyTTL     time.Duration
	KIEBaseURL    string
	KIEAPIKey     string
	S3            storage.Config
}

// DefaultDataDir is $XDG_CONFIG_HOME/kloze or ~/.config/kloze.
func DefaultDataDir(getenv func(string) string) string {
	if v := getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "kloze")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kloze")
}

// RegisterClient binds the global CLI flags on fs with env defaults.
func RegisterClient(fs *flag.FlagSet, getenv func(string) string) *Client {
	e := env(getenv)
	c := &Client{}
	fs.StringVar(&c.Addr, "addr", e.str("ADDR", "localhost:8443"), "server address")
	fs.StringVar(&c.CACert, "cacert", e.str("CACERT", ""), "CA certificate (PEM)")
	fs.BoolVar(&c.Insecure, "insecure", e.flag("INSECURE", false), "skip certificate verification (dev)")
	fs.BoolVar(&c.Plaintext, "plaintext", e.flag("PLAINTEXT", false), "connect without TLS (dev)")
	fs.StringVar(&c.DataDir, "data", e.str("DATA_DIR", DefaultDataDir(getenv)), "directory for the guest ledger and session")
	fs.DurationVar(&c.Timeout, "timeout", e.dur("TIMEOUT", 30*time.Second), "overall command timeout")
	fs.DurationVar(&c.EffectTimeout, "effect-timeout", e.dur("EFFECT_TIMEOUT", 90*time.Second), "deadline for paid external calls")
	fs.DurationVar(&c.PolicyTTL, "policy-ttl", e.dur("POLICY_TTL", 10*time.Minute), "how long cached rate-limit policies stay fresh")
	fs.StringVar(&c.KIEBaseURL, "kie-url", e.str("KIE_BASE_URL", "https://api.kie.ai"), "KIE API base URL")
	fs.StringVar(&c.KIEAPIKey, "kie-key", e.str("KIE_API_KEY", ""), "KIE API key")
	c.S3 = storage.Config{
		Endpoint:      e.str("S3_ENDPOINT", ""),
		Region:        e.str("S3_REGION", ""),
		AccessKey:     e.str("S3_ACCESS_KEY", ""),
		SecretKey:     e.str("S3_SECRET_KEY", ""),
		Bucket:        e.str("S3_BUCKET", ""),
		PublicBaseURL: e.str("S3_PUBLIC_BASE_URL", ""),
		UsePathStyle:  e.flag("S3_USE_PATH_STYLE", false),
		Prefix:        e.str("S3_PREFIX", "stickers"),
	}
	return c
}

// Validate checks the connection settings.
func (c *Client) Validate() error {
	var problems []error
	if c.Addr == "" {
		problems = append(problems, errors.New("missing server address"))
	}
	if c.DataDir == "" {
		problems = append(problems, errors.New("missing data directory"))
	}
	if c.Plaintext && (c.Insecure || c.CACert != "") {
		problems = append(problems, errors.New("-plaintext excludes -insecure and -cacert"))
	}
	if c.Timeout <= 0 || c.EffectTimeout <= 0 {
		problems = append(problems, errors.New("timeouts must be positive"))
	}
	return errors.Join(problems...)
}

// UploadsEnabled reports whether S3 settings are complete.
func (c *Client) UploadsEnabled() bool { return c.S3.Validate() == nil }
