package api

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"infinite-experiment/themecookie/assets"
	"infinite-experiment/themecookie/internal/config"
	"infinite-experiment/themecookie/internal/demo"
	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/themecookie"
	"infinite-experiment/themecookie/internal/ui"
)

const (
	ThemesPath = "/themes"
	EventPath  = "/ui/event"
)

type Dependencies struct {
	Config    *config.Config
	Log       *zap.SugaredLogger
	Gatherer  prometheus.Gatherer
	Metrics   *metrics.MetricsRegistry
	Resources *themecookie.Resources
	Sessions  *ui.SessionStore
	UI        *ui.Service
	Themes    *ThemeHandler
}

// ThemeFs returns the file system themes are read from: the bundled assets
// when dir is empty, otherwise a read-only view of dir.
func ThemeFs(dir string) (afero.Fs, error) {
	if dir == "" {
		return afero.FromIOFS{FS: assets.FS}, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("themes dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("themes dir %s is not a directory", dir)
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// InitDependencies wires the UI service, the theme cookie add-on and the
// demo page. reg receives all metrics.
func InitDependencies(cfg *config.Config, log *zap.SugaredLogger, fs afero.Fs, reg *prometheus.Registry) (*Dependencies, error) {
	resources := themecookie.NewResources(fs, cfg.Themes.Root)
	if cfg.Themes.Default != "" && !resources.HasTheme(cfg.Themes.Default) {
		return nil, fmt.Errorf("default theme %q has no stylesheet under %s", cfg.Themes.Default, resources.Root())
	}

	sessions := ui.NewSessionStore(cfg.Session.IdleTimeout, cfg.Session.CleanupInterval)
	sessions.OnEvicted(func(id string) {
		log.Debugw("Session expired", "session_id", id)
	})

	metricsReg := metrics.NewMetricsRegistry(reg, sessions.Count)

	service := ui.NewService(sessions, log, ui.Paths{
		Themes:     ThemesPath,
		Event:      EventPath,
		Stylesheet: resources.Stylesheet,
	})
	service.AddProvider(ui.NewClassProvider(demo.NewPageClass(cfg.Themes.Default, log, metricsReg)))
	service.Init(themecookie.NewInstaller(resources, log, metricsReg))

	return &Dependencies{
		Config:    cfg,
		Log:       log,
		Gatherer:  reg,
		Metrics:   metricsReg,
		Resources: resources,
		Sessions:  sessions,
		UI:        service,
		Themes:    NewThemeHandler(resources, metricsReg, log),
	}, nil
}
