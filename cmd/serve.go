package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"workend/config"
	"workend/web"
)

const serveHost = "localhost"

var (
	servePort    int
	serveNoOpen  bool
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web form",
	Long: `Start a local HTTP server with the end-of-workday form.

The form recalculates on every input change, offers break/overtime presets,
a "set to now" button, a reset button, and copies the end time to the clipboard.
Port and browser opening default to serve.port / serve.open_browser from config.`,
	Example: `
  # Start local server on the configured port
  workend serve

  # Custom port, no browser, request logging
  workend serve --port 8484 --no-open --verbose
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		port := resolveServePort(cmd.Flags().Changed("port"), servePort, *cfg)
		logger := newServeLogger(serveVerbose)

		server := &http.Server{
			Addr:              listenAddr(port),
			Handler:           web.NewServer(*cfg, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		listenURL := "http://" + listenAddr(port)
		logger.Info("listening", slog.String("url", listenURL))
		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", listenURL)
		if cfg.Serve.OpenBrowser && !serveNoOpen {
			if openErr := openURLInBrowser(listenURL); openErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to open browser: %v\n", openErr)
			}
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port for the local web server (default: serve.port from config)")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "Do not open browser automatically")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log every request to stderr")
}

func resolveServePort(flagSet bool, flagValue int, cfg config.Config) int {
	if flagSet && flagValue > 0 {
		return flagValue
	}
	return cfg.Serve.Port
}

// The form has no authentication, so it only listens on the loopback interface.
func listenAddr(port int) string {
	return net.JoinHostPort(serveHost, strconv.Itoa(port))
}

func newServeLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openURLInBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}
