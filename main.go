package main

import (
	bidding "auction-client/internal/biddingService"
	"auction-client/internal/biddingerrors"
	"auction-client/internal/config"
	"auction-client/internal/gateway"
	"auction-client/internal/repository"
	"auction-client/internal/server"
	"auction-client/internal/session"
	"auction-client/services/gateway/store"
	"auction-client/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", biddingerrors.UserMessage(err, err.Error()))
		stop()
		os.Exit(1)
	}
}

// app is the wired client used by every command
type app struct {
	cfg     *config.Config
	session *session.Store
	bidding *bidding.BiddingService
	out     *printer

	closers []func() error
}

type globalFlags struct {
	json        bool
	metricsFile string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "auction-client",
		Short:         "Browse auctions, place bids and manage listings on the auction gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "print machine-readable JSON")
	root.PersistentFlags().StringVar(&flags.metricsFile, "metrics-file", "", "write gateway metrics in Prometheus textfile format to `PATH`")

	root.AddCommand(
		newLoginCmd(flags),
		newRegisterCmd(flags),
		newLogoutCmd(flags),
		newWhoamiCmd(flags),
		newListCmd(flags),
		newShowCmd(flags),
		newBidCmd(flags),
		newWithdrawCmd(flags),
		newCreateCmd(flags),
		newEditCmd(flags),
		newCoverCmd(flags),
		newDeleteCmd(flags),
		newSandboxCmd(),
	)
	return root
}

// run builds the app, optionally restores the session and runs fn
func run(cmd *cobra.Command, flags *globalFlags, restore bool, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	utils.ConfigureLogger(cfg.LogLevel, nil)

	a, err := newApp(ctx, cfg, newPrinter(cmd.OutOrStdout(), flags.json))
	if err != nil {
		return err
	}
	defer a.close()

	if restore {
		if _, err := a.session.Restore(ctx); err != nil {
			return err
		}
	}

	runErr := fn(ctx, a)

	if flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(flags.metricsFile, prometheus.DefaultGatherer); err != nil {
			utils.Warn("failed to write metrics file", map[string]any{"path": flags.metricsFile, "error": err.Error()})
		}
	}
	return runErr
}

func newApp(ctx context.Context, cfg *config.Config, out *printer) (*app, error) {
	a := &app{cfg: cfg, out: out}

	db, err := a.sessionDB(ctx)
	if err != nil {
		return nil, err
	}

	client, err := gateway.NewClient(gateway.Config{
		BaseURL:        cfg.Gateway.URL,
		CollectionPath: cfg.Gateway.CollectionPath,
		Location:       cfg.Gateway.Location(),
		Timeout:        cfg.Gateway.Timeout,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	sessions := session.NewStore(client, db, cfg.Session.Strategy)
	client.SetCredentials(sessions)

	a.session = sessions
	a.bidding = bidding.NewBiddingService(client, sessions)
	return a, nil
}

func (a *app) sessionDB(ctx context.Context) (repository.SessionDB, error) {
	switch a.cfg.Session.Backend {
	case config.BackendRedis:
		repo, err := repository.ConnectRedis(ctx, repository.RedisConfig{
			Addr:   a.cfg.Redis.Addr,
			DB:     a.cfg.Redis.DB,
			Prefix: a.cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("session storage: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	case config.BackendMemory:
		return repository.NewMemoryRepo(), nil
	default:
		return repository.NewFileRepo(a.cfg.Session.File), nil
	}
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			utils.Warn("failed to close resource", map[string]any{"error": err.Error()})
		}
	}
}

func newSandboxCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Serve an in-memory gateway with demo users and auctions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			utils.ConfigureLogger(cfg.LogLevel, nil)

			gw := store.New()
			if seed {
				if err := prepopulateAuctions(gw); err != nil {
					return err
				}
			}

			srv := newSandboxServer(gw, cfg, getPort(cfg.Port))
			fmt.Fprintf(cmd.OutOrStdout(), "Starting sandbox gateway on %s...\n", srv.Addr)
			return serve(cmd.Context(), srv)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "create demo users and auctions")
	return cmd
}

// demo accounts created by the sandbox; the password is shared
const demoPassword = "password"

var demoUsers = []struct{ name, email string }{
	{name: "Sari Seller", email: "seller@example.com"},
	{name: "Budi Buyer", email: "buyer@example.com"},
}

// demoCover is a 1x1 transparent PNG
var demoCover = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// prepopulateAuctions adds demo accounts and a few running auctions to the sandbox store
func prepopulateAuctions(gw *store.Store) error {
	ids := make([]int64, 0, len(demoUsers))
	for _, u := range demoUsers {
		user, err := gw.Register(u.name, u.email, demoPassword)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		ids = append(ids, user.ID)
	}
	seller, buyer := ids[0], ids[1]

	auctions := []store.AuctionInput{
		{Title: "Vintage watch", Description: "Hand-wound, serviced last year", StartBid: 200000, ClosedAt: gw.Now().Add(48 * time.Hour)},
		{Title: "Film camera", Description: "35mm rangefinder with case", StartBid: 750000, ClosedAt: gw.Now().Add(6 * time.Hour)},
		{Title: "Batik cloth", Description: "Hand-drawn, 2 x 1.1 m", StartBid: 150000, ClosedAt: gw.Now().Add(30 * time.Minute)},
	}
	for i, in := range auctions {
		id, err := gw.CreateAuction(seller, in, store.Cover{Filename: "cover.png", ContentType: "image/png", Content: demoCover})
		if err != nil {
			return fmt.Errorf("seed auction %q: %w", in.Title, err)
		}
		if i == 0 {
			if err := gw.AddBid(buyer, id, in.StartBid+50000); err != nil {
				return fmt.Errorf("seed bid: %w", err)
			}
		}
	}
	return nil
}

// getPort returns the listen address for the sandbox, ":8080" when unset
func getPort(p string) string {
	if p == "" {
		return ":8080"
	}
	return fmt.Sprintf(":%s", p)
}

func newSandboxServer(gw *store.Store, cfg *config.Config, addr string) *http.Server {
	router := server.SetupRouter(gw, cfg.Gateway.Location(), cfg.Gateway.CollectionPath)
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	utils.Info("shutting down sandbox gateway", nil)
	return srv.Shutdown(shutdownCtx)
}
