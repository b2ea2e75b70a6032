package cmd

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/config"
	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/pkg/settings"
)

const defaultSourceTimeout = 15 * time.Second

// runConfig is the merged configuration after command-line overrides.
type runConfig struct {
	// path is the user config file that was merged, empty for defaults only.
	path string
	cfg  config.Config

	timeout   time.Duration
	storeKind prefs.StoreKind
}

// loadRunConfig merges the user config file over the embedded defaults and
// then applies flags, which always win.
func loadRunConfig(o *rootOptions) (runConfig, error) {
	path := config.ResolvePath(o.configFile)
	cfg, err := config.Load(path)
	if err != nil {
		return runConfig{}, fmt.Errorf("load config: %w", err)
	}

	if o.sourceURL != "" {
		cfg.Source.URL = o.sourceURL
		cfg.Source.File = ""
	}
	if o.sourceFile != "" {
		cfg.Source.File = o.sourceFile
	}
	if o.timeout != "" {
		cfg.Source.Timeout = o.timeout
	}
	if o.prefsStore != "" {
		cfg.Preferences.Store = o.prefsStore
	}
	if o.prefsPath != "" {
		cfg.Preferences.Path = o.prefsPath
	}
	if o.prefsKey != "" {
		cfg.Preferences.Key = o.prefsKey
	}
	if cfg.Preferences.Key == "" {
		cfg.Preferences.Key = settings.PreferenceSlot
	}

	timeout, err := cfg.Source.TimeoutDuration(defaultSourceTimeout)
	if err != nil {
		return runConfig{}, err
	}

	kind := prefs.StoreKind(cfg.Preferences.Store)
	if kind == "" {
		kind = prefs.StoreFile
	}
	return runConfig{path: path, cfg: cfg, timeout: timeout, storeKind: kind}, nil
}

// source builds the configured catalog source. A file wins over a URL.
func (rc runConfig) source() catalog.Source {
	if rc.cfg.Source.File != "" {
		return catalog.FileSource{Path: rc.cfg.Source.File}
	}
	return catalog.NewHTTPSource(rc.cfg.Source.URL, rc.timeout)
}

// sourceName describes the source for logs.
func (rc runConfig) sourceName() string {
	if rc.cfg.Source.File != "" {
		return rc.cfg.Source.File
	}
	if rc.cfg.Source.URL != "" {
		return rc.cfg.Source.URL
	}
	return catalog.DefaultSourceURL
}

// openStore opens the preference backend. The returned func releases it.
func (rc runConfig) openStore(log logr.Logger) (*prefs.Store, string, func(), error) {
	kv, err := prefs.Open(rc.storeKind, rc.cfg.Preferences.Path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open preference store: %w", err)
	}
	where := string(rc.storeKind)
	if p, ok := kv.(interface{ Path() string }); ok {
		where += " " + p.Path()
	}
	closeFn := func() {
		if c, ok := kv.(prefs.Closer); ok {
			if err := c.Close(); err != nil {
				log.Error(err, "failed to close preference store")
			}
		}
	}
	log.V(1).Info("preference store opened", "store", where, "key", rc.cfg.Preferences.Key)
	return prefs.NewStore(kv, rc.cfg.Preferences.Key, log), where, closeFn, nil
}
