// Package admincli implements the administrative terminal surface: user
// management, audit-log viewing and system stats. It shares the client stack
// with the main app but gates every command on the admin role flag.
package admincli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/hisabkitab/cli/internal/client/api"
	"github.com/hisabkitab/cli/internal/client/cli"
	"github.com/hisabkitab/cli/internal/client/config"
	"github.com/hisabkitab/cli/internal/client/guard"
	"github.com/hisabkitab/cli/internal/client/localdb"
	"github.com/hisabkitab/cli/internal/client/notify"
	"github.com/hisabkitab/cli/internal/client/services"
	"github.com/hisabkitab/cli/internal/client/session"
	"github.com/hisabkitab/cli/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	bus      *notify.Bus
	sessions *session.Store
	access   *guard.Guard
	admin    *services.AdminService
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, cfg.CredentialDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing credential store: %w", err)
	}

	gateway := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	sessions := session.NewStore(services.NewAuthService(gateway), gateway, db, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		bus:      notify.NewBus(clockwork.NewRealClock()),
		sessions: sessions,
		access:   guard.NewAdmin(sessions),
		admin:    services.NewAdminService(gateway),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and enters the admin REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Println("HisabKitab admin panel (type 'help' for commands)")

	a.sessions.Initialize(ctx)
	switch a.access.Evaluate() {
	case guard.Granted:
		fmt.Printf("Logged in as %s\n", a.sessions.Current().Email)
	default:
		fmt.Println("Admin login required. Use 'login'.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.access.Evaluate, scanner)
}

// Login authenticates and verifies the identity carries the admin role:
// a valid but non-admin session is discarded on the spot.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		a.bus.Error(api.Detail(err, "Login failed"))
		return err
	}

	if !a.sessions.IsAuthorized() {
		a.sessions.Logout(ctx)
		a.bus.Error("This account has no admin access")
		return nil
	}

	a.bus.Success(fmt.Sprintf("Logged in as %s", email))
	return nil
}

// Logout clears the session and the stored credential.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	a.bus.Info("Logged out")
	return nil
}

// flushNotifications prints and clears pending bus messages.
func (a *App) flushNotifications() {
	for _, n := range a.bus.Drain() {
		printlnFn(fmt.Sprintf("[%s] %s", n.Severity, n.Message))
	}
}

// input seams shared with the main surface.
var (
	getSimpleText = cli.GetSimpleText
	getPassword   = cli.GetPassword
)
