package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eni-rainstop/colorselect/internal/api"
	"github.com/eni-rainstop/colorselect/internal/infra/logger"
	"github.com/eni-rainstop/colorselect/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(debug *bool) *cobra.Command {
	var path string
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette page and JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(path)
			if err != nil {
				return err
			}

			stop := startLogging(p.root, *debug, cmd.ErrOrStderr())
			defer stop()
			log := logger.L()

			if strings.TrimSpace(addr) != "" {
				p.cfg.Server.Addr = strings.TrimSpace(addr)
			}

			handler := api.NewServer(
				p.cfg,
				usecase.NewGeneratePalette(usecase.WithLogger(log)),
				usecase.NewDescribeColor(),
				log,
			)

			srv := &http.Server{
				Addr:              p.cfg.Server.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      10 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				log.Info("serve.listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (ctrl+c to stop)\n", srv.Addr)

			select {
			case err, ok := <-errCh:
				if ok && err != nil {
					log.Error("serve.failed", "err", err)
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("serve.shutdown")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()
			return srv.Shutdown(shutdownCtx)
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Project directory (optional; autodetected if omitted)")
	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from colorselect.yaml)")
	return c
}
