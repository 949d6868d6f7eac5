package themecookie

import (
	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/ui"
)

// Installer adds a ProxyProvider to every session of the service it is
// registered with.
type Installer struct {
	resources *Resources
	log       *zap.SugaredLogger
	metrics   *metrics.MetricsRegistry
}

var _ ui.ServiceInitListener = (*Installer)(nil)

func NewInstaller(resources *Resources, log *zap.SugaredLogger, metricsReg *metrics.MetricsRegistry) *Installer {
	return &Installer{resources: resources, log: log, metrics: metricsReg}
}

func (i *Installer) ServiceInit(s *ui.Service) {
	s.AddSessionInitListener(func(session *ui.Session) {
		session.AddProvider(NewProxyProvider(session, i.resources, i.log, i.metrics))
	})
	i.log.Infow("Theme cookie provider installed", "themes_root", i.resources.Root())
}
