package asset

import (
	"embed"
	"fmt"

	"github.com/dixieflatline76/Slim/util/log"
)

//go:embed text/*
var assets embed.FS

// Manager manages the loading of embedded text assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetRaw loads and returns the raw bytes of an embedded text asset by name.
func (am *Manager) GetRaw(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("asset name is empty")
	}
	data, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Debugf("Error loading text asset %s: %v", name, err)
		return nil, err
	}
	return data, nil
}
