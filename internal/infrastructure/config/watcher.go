package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/emicon/internal/logging"
)

// Watch starts watching the config file and reloads it on change.
// Invalid edits are logged and the previous configuration is kept.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		config, err := m.unmarshalConfig()
		if err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		m.config = config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, cb := range callbacks {
			cb(config)
		}
	})
	m.viper.WatchConfig()
	m.watching = true
}

// OnConfigChange registers a callback run after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}
