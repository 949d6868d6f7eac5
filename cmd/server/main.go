package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"infinite-experiment/themecookie/internal/api"
	"infinite-experiment/themecookie/internal/config"
	"infinite-experiment/themecookie/internal/logging"
	"infinite-experiment/themecookie/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd(run).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the server command. serve receives the loaded
// configuration once flags, environment and config file are merged.
func newRootCmd(serve func(ctx context.Context, cfg *config.Config) error) *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:           "themecookie-server",
		Short:         "Serve the theme cookie demo page",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default ./themecookie.yaml)")
	flags.String("addr", "", "listen address")
	flags.String("themes-dir", "", "directory holding the themes root (default: bundled themes)")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	bindFlag(v, "server.addr", cmd, "addr")
	bindFlag(v, "themes.dir", cmd, "themes-dir")
	bindFlag(v, "log_level", cmd, "log-level")

	return cmd
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := logging.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Close()

	logging.Info("Theme cookie server starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	fs, err := api.ThemeFs(cfg.Themes.Dir)
	if err != nil {
		logging.Error("Failed to open themes", "dir", cfg.Themes.Dir, "error", err.Error())
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps, err := api.InitDependencies(cfg, logging.GetLogger(), fs, reg)
	if err != nil {
		logging.Error("Failed to initialize dependencies", "error", err.Error())
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           routes.RegisterRoutes(deps, time.Now()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.Server.Addr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
