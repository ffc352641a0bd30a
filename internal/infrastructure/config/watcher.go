package config

import (
	"context"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/darkwatch/internal/logging"
)

// Watch reloads the config file whenever it changes on disk and notifies the
// OnConfigChange callbacks. Editors often write a file several times per save;
// reloads that yield an identical Config are not announced. A file that fails
// to load or validate is logged and the previous values are kept.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	log := logging.FromContext(ctx)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

		m.mu.Lock()
		previous := m.config
		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
			return
		}
		if previous != nil && reflect.DeepEqual(*previous, *m.config) {
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked snapshots the callbacks and the config, releases
// m.mu and then calls each callback with its own copy.
func (m *Manager) notifyCallbacksLocked() {
	snapshot := *m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := snapshot
		callback(&c)
	}
}

// OnConfigChange registers callback for successful reloads.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file into m.config. Callers hold m.mu.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}
