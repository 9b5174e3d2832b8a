// Command kloze is a terminal driver for the Kloze Stickers credit system:
// guest balance, sign-in with guest merge, paid generation, rewarded ads and
// the daily bonus.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/klozestickers/credits/gen/go/kloze/credits/v1"
	"github.com/klozestickers/credits/internal/config"
	"github.com/klozestickers/credits/internal/credits"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/generation"
	"github.com/klozestickers/credits/internal/kv"
	"github.com/klozestickers/credits/internal/ledger"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/storage"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `kloze CLI
Usage:
  kloze [-addr HOST:PORT] [-cacert file | -insecure | -plaintext] [-data dir] <cmd> [args]

Commands:
  version
  balance
  register  -u <username> -p <password>
  login     -u <username> -p <password>     (merges guest credits into the account)
  logout
  generate  -prompt <text> [-provider flux-2|nano-banana|nano-banana-pro] [-nobg]
  watch-ad
  bonus                                    (daily bonus eligibility)
  claim                                    (claim the daily bonus)

Global flags may also be set as KLOZE_* environment variables or in ./.env.
`)
	os.Exit(2)
}

// app holds the wiring shared by all subcommands.
type app struct {
	cfg  *config.Client
	in   io.Reader
	out  io.Writer
	log  *zap.Logger
	now  func() time.Time
	sess *session

	store  *kv.SQLite
	conn   *grpc.ClientConn
	local  *ledger.Local
	remote *ledger.Remote
	orch   *credits.Orchestrator
}

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(cfg *config.Client) (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if !cfg.Plaintext {
		var err error
		if creds, err = loadTLS(cfg.CACert, cfg.Insecure); err != nil {
			return nil, err
		}
	}
	return grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(creds))
}

// newApp opens the guest ledger and prepares a lazy server connection.
func newApp(cfg *config.Client, in io.Reader, out io.Writer, log *zap.Logger) (*app, error) {
	store, err := kv.OpenSQLite(guestDBPath(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("open guest ledger: %w", err)
	}
	conn, err := dial(cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	a := &app{cfg: cfg, in: in, out: out, log: log, now: time.Now, store: store, conn: conn}
	a.local = ledger.NewLocal(store, log.Named("ledger"))
	a.remote = ledger.NewRemote(pb.NewCreditsClient(conn))
	if s, err := loadSession(cfg.DataDir, a.now()); err == nil {
		a.sess = &s
		a.remote.SetToken(s.AccessToken)
	} else if !errors.Is(err, errNoSession) {
		log.Warn("ignoring unreadable session", zap.Error(err))
	}

	lim := ledger.NewRemoteLimiter(a.remote, cfg.PolicyTTL, log.Named("limiter"))
	a.orch = credits.New(a.local, a.remote, lim, credits.Config{EffectTimeout: cfg.EffectTimeout}, log.Named("credits")).
		WithSink(credits.ZapSink{Log: log.Named("analytics")}).
		WithAds(promptAd{in: in, out: out, reward: 1})
	return a, nil
}

func (a *app) Close() {
	_ = a.conn.Close()
	_ = a.store.Close()
}

// owner is the signed-in account, or this device's guest.
func (a *app) owner(ctx context.Context) (model.Owner, error) {
	if a.sess != nil {
		return model.Owner{Kind: model.OwnerAccount, ID: a.sess.UserID}, nil
	}
	id, err := a.local.GuestID(ctx)
	if err != nil {
		return model.Owner{}, err
	}
	return model.Owner{Kind: model.OwnerGuest, ID: id}, nil
}

func (a *app) printJSON(v any) {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func credentialFlags(name string, args []string) (string, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	u := fs.String("u", "", "username")
	p := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *u == "" || *p == "" {
		return "", "", fmt.Errorf("%w: need -u and -p", errs.ErrInvalidArgument)
	}
	return *u, *p, nil
}

func (a *app) cmdBalance(ctx context.Context) error {
	owner, err := a.owner(ctx)
	if err != nil {
		return err
	}
	bal, err := a.orch.Balance(ctx, owner)
	if err != nil {
		return err
	}
	a.printJSON(map[string]any{"owner": owner.Kind.String(), "balance": bal})
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	u, p, err := credentialFlags("register", args)
	if err != nil {
		return err
	}
	id, err := a.remote.Register(ctx, u, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, id)
	return nil
}

// cmdLogin signs in and moves the guest balance into the account. The local
// ledger is cleared and the guest id rotated once the server has recorded the
// merge.
func (a *app) cmdLogin(ctx context.Context, args []string) error {
	u, p, err := credentialFlags("login", args)
	if err != nil {
		return err
	}
	tok, uid, err := a.remote.Login(ctx, u, p)
	if err != nil {
		return err
	}
	s := session{AccessToken: tok.AccessToken, ExpiresAt: tok.ExpiresAt, UserID: uid, Username: u}
	if err := saveSession(a.cfg.DataDir, s); err != nil {
		return err
	}
	a.sess = &s

	merged, err := a.mergeGuest(ctx)
	if err != nil {
		a.log.Warn("guest merge failed, will retry on next login", zap.Error(err))
		fmt.Fprintln(a.out, "ok (guest credits not merged yet: "+errs.UserMessage(err, a.now())+")")
		return nil
	}
	a.printJSON(map[string]any{"user_id": uid, "merged": merged.Merged, "balance": merged.Balance})
	return nil
}

// mergeGuest carries the guest balance over. An empty ledger is not sent. A
// guest id the server already knows is rotated and its credits kept for the
// next sign-in, since the earlier merge may have carried a different amount.
func (a *app) mergeGuest(ctx context.Context) (model.MergeResult, error) {
	amount, err := a.local.Read(ctx)
	if err != nil {
		return model.MergeResult{}, err
	}
	if amount == 0 {
		bal, err := a.remote.Balance(ctx)
		return model.MergeResult{Balance: bal}, err
	}
	guestID, err := a.local.GuestID(ctx)
	if err != nil {
		return model.MergeResult{}, err
	}
	res, err := a.remote.MergeGuest(ctx, guestID, amount)
	if errors.Is(err, errs.ErrAlreadyExists) {
		if _, rerr := a.local.RotateGuestID(ctx); rerr != nil {
			return model.MergeResult{}, rerr
		}
		return model.MergeResult{}, err
	}
	if err != nil {
		return model.MergeResult{}, err
	}
	if err := a.local.Write(ctx, 0); err != nil {
		return res, err
	}
	if _, err := a.local.RotateGuestID(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func (a *app) cmdLogout() error {
	a.sess = nil
	a.remote.SetToken("")
	if err := clearSession(a.cfg.DataDir); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) cmdGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	prompt := fs.String("prompt", "", "sticker prompt")
	provider := fs.String("provider", string(generation.Flux2), "flux-2 | nano-banana | nano-banana-pro")
	noBG := fs.Bool("nobg", false, "remove background")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := generation.ParseProvider(*provider)
	if err != nil {
		return err
	}
	if a.cfg.KIEAPIKey == "" {
		return fmt.Errorf("%w: missing -kie-key (KLOZE_KIE_API_KEY)", errs.ErrInvalidArgument)
	}
	gen, err := generation.NewKIE(generation.KIEConfig{
		BaseURL:     a.cfg.KIEBaseURL,
		APIKey:      a.cfg.KIEAPIKey,
		FetchResult: a.cfg.UploadsEnabled(),
	}, a.log.Named("kie"))
	if err != nil {
		return err
	}
	if a.cfg.UploadsEnabled() {
		up, err := storage.NewUploader(a.cfg.S3)
		if err != nil {
			return err
		}
		a.orch.WithUploader(up)
	}

	owner, err := a.owner(ctx)
	if err != nil {
		return err
	}
	img, res, err := a.orch.Generate(ctx, owner, generation.Request{Prompt: *prompt, Provider: p, RemoveBackground: *noBG}, gen)
	if err != nil {
		return err
	}
	a.printJSON(map[string]any{"url": img.URL, "cost": res.Cost, "balance": res.Balance})
	return nil
}

func (a *app) cmdWatchAd(ctx context.Context) error {
	owner, err := a.owner(ctx)
	if err != nil {
		return err
	}
	out, err := a.orch.WatchAd(ctx, owner)
	if err != nil {
		return err
	}
	if !out.Rewarded {
		fmt.Fprintln(a.out, "no reward")
		return nil
	}
	a.printJSON(map[string]any{"earned": out.Credits, "balance": out.Balance})
	return nil
}

func (a *app) requireAccount() error {
	if a.sess == nil {
		return fmt.Errorf("daily bonus needs an account: %w", errs.ErrUnauthorized)
	}
	return nil
}

func (a *app) cmdBonus(ctx context.Context) error {
	if err := a.requireAccount(); err != nil {
		return err
	}
	e, err := a.remote.BonusEligibility(ctx)
	if err != nil {
		return err
	}
	a.printJSON(map[string]any{
		"can_claim":       e.CanClaim,
		"streak_days":     e.StreakDays,
		"bonus_amount":    e.BonusAmount,
		"next_claim_time": e.NextClaimTime.Format(time.RFC3339),
	})
	return nil
}

func (a *app) cmdClaim(ctx context.Context) error {
	if err := a.requireAccount(); err != nil {
		return err
	}
	r, err := a.remote.ClaimBonus(ctx)
	if err != nil {
		return err
	}
	if !r.Success {
		return errs.ErrAlreadyClaimedToday
	}
	a.printJSON(map[string]any{"earned": r.CreditsEarned, "streak": r.NewStreak, "balance": r.TotalCredits})
	return nil
}

// run dispatches one subcommand. Paid actions carry their own deadlines, so
// only the quick commands get the global timeout.
func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "generate":
		return a.cmdGenerate(ctx, args)
	case "watch-ad":
		return a.cmdWatchAd(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	switch cmd {
	case "version":
		fmt.Fprintf(a.out, "kloze %s (%s)\n", version, buildDate)
		return nil
	case "balance":
		return a.cmdBalance(ctx)
	case "register":
		return a.cmdRegister(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "bonus":
		return a.cmdBonus(ctx)
	case "claim":
		return a.cmdClaim(ctx)
	default:
		return errUnknownCommand
	}
}

var errUnknownCommand = errors.New("unknown command")

// main parses global flags and runs a single subcommand.
func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	cfg := config.RegisterClient(flag.CommandLine, os.Getenv)
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	log := zap.NewNop()
	if *verbose {
		log, _ = zap.NewDevelopment()
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, os.Stdin, os.Stdout, log)
	if err != nil {
		fail(err)
	}
	defer a.Close()

	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, errUnknownCommand) {
			usage()
		}
		a.Close()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errs.UserMessage(err, time.Now()))
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
