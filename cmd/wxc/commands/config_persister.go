package commands

import (
	"sync"
	"time"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken stores a refreshed token and its metadata in the config file.
func (p *ConfigPersister) UpdateToken(token string, expiresAt time.Time, refreshToken string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Token = token

	if !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	// Webex may rotate the refresh token.
	if refreshToken != "" {
		config.RefreshToken = refreshToken
	}

	return saveConfigStruct(config)
}
