// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/nets-lab/periodicnet/crystal"
	"github.com/nets-lab/periodicnet/sbu"
	"github.com/nets-lab/periodicnet/warn"
)

// defaultMOFCutoffAngstrom is the metal-ligand contraction distance the
// default SBU finder uses when no cutoff is configured.
const defaultMOFCutoffAngstrom = 2.6

// config aggregates every Build knob. Options are applied in order,
// last-wins, then any zero fields are resolved to deterministic
// defaults so Build itself stays branch-free.
type config struct {
	warn     warn.Func
	finder   sbu.Finder
	clusters *crystal.Clusters
}

// Option configures a Build call.
type Option func(*config)

// WithWarn routes every warning cifrecord's cleanup steps emit to fn.
// The default discards all warnings.
func WithWarn(fn warn.Func) Option {
	return func(c *config) { c.warn = fn }
}

// WithFinder overrides the sbu.Finder used by MOFClustering and
// GuessClustering. The default is sbu.DefaultFinder at
// defaultMOFCutoffAngstrom.
func WithFinder(f sbu.Finder) Option {
	return func(c *config) { c.finder = f }
}

// WithClusters attaches a pre-computed clustering to the crystal handed
// to cluster.Build, making InputClustering and AutomaticClustering usable
// without running SBU detection.
func WithClusters(clusters crystal.Clusters) Option {
	return func(c *config) { c.clusters = &clusters }
}

func newConfig(opts ...Option) config {
	cfg := config{
		warn:   warn.NoOp(),
		finder: sbu.NewDefaultFinder(defaultMOFCutoffAngstrom),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.warn == nil {
		cfg.warn = warn.NoOp()
	}
	if cfg.finder == nil {
		cfg.finder = sbu.NewDefaultFinder(defaultMOFCutoffAngstrom)
	}

	return cfg
}
