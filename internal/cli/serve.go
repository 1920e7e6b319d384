package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/workerhub/internal/db"
	"github.com/example/workerhub/internal/wire"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 5 * time.Second

// demoPassword is the password of every account created by --seed.
const demoPassword = "password"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the authentication API (POST /api/auth/register, /api/auth/login)",
	Long: `Run the authentication API the CLI logs in against.

With --seed, demo accounts matching the sample workers are created first
(password "password"), e.g. ravi@workerhub.test.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		seed, _ := cmd.Flags().GetBool("seed")
		if addr == "" {
			addr = wire.Config().ServeAddr
		}

		if seed {
			hash, err := wire.AuthService().HashPassword(demoPassword)
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}
			if err := db.SeedFixtures(wire.Database(), hash); err != nil {
				return err
			}
			fmt.Println("✓ Seeded demo accounts")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, addr, wire.APIServer().Handler())
	},
}

func runServer(ctx context.Context, addr string, handler http.Handler) error {
	logger := wire.Logger()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting auth api server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("auth api server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down auth api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config serve_addr)")
	serveCmd.Flags().Bool("seed", false, "Create demo accounts before serving")
}

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return serveCmd
}
