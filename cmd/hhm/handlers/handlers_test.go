package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/imamik/hhm/internal/config"
	"github.com/imamik/hhm/internal/fleet"
)

// fakeProvider serves a fixed listing and records mutations.
type fakeProvider struct {
	servers []fleet.Instance
	listErr error

	created []string
	deleted []int64
}

func (f *fakeProvider) ListInstances(_ context.Context) ([]fleet.Instance, error) {
	return f.servers, f.listErr
}

func (f *fakeProvider) CreateInstance(_ context.Context, spec fleet.InstanceSpec, name string) (fleet.Instance, error) {
	f.created = append(f.created, name)
	return fleet.Instance{ID: int64(100 + len(f.created)), Name: name, Labels: spec.Labels}, nil
}

func (f *fakeProvider) DeleteInstance(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Prefix:       "game",
		APIKey:       "test-token",
		SSHKeys:      []string{"laptop"},
		Image:        "ubuntu-24.04",
		InstanceType: "cx22",
		Zone:         "fsn1",
		CloudInit:    "hostname: game-%HHM_ID%",
		Labels:       map[string]string{"app": "game"},
	}
}

func managedServers(n int) []fleet.Instance {
	servers := []fleet.Instance{{ID: 900, Name: "database", Status: fleet.StatusRunning, Labels: map[string]string{"app": "db"}}}
	for i := 1; i <= n; i++ {
		servers = append(servers, fleet.Instance{
			ID:     int64(i),
			Name:   fmt.Sprintf("game-%08d", i),
			IPv4:   fmt.Sprintf("203.0.113.%d", i),
			Status: fleet.StatusRunning,
			Labels: map[string]string{"app": "game"},
		})
	}
	return servers
}

// stubFactories replaces the package factories for one test and restores them afterwards.
func stubFactories(t *testing.T, cfg *config.Config, cfgErr error, provider fleet.Provider) *string {
	t.Helper()
	origLoad := loadConfig
	origClient := newFleetClient
	origConfirmer := newConfirmer
	t.Cleanup(func() {
		loadConfig = origLoad
		newFleetClient = origClient
		newConfirmer = origConfirmer
	})

	var token string
	loadConfig = func(_ string) (*config.Config, error) {
		if cfgErr != nil {
			return nil, cfgErr
		}
		return cfg, nil
	}
	newFleetClient = func(tok string) fleet.Provider {
		token = tok
		return provider
	}
	return &token
}

type scriptedConfirmer struct {
	err   error
	calls int
}

func (s *scriptedConfirmer) Confirm() error {
	s.calls++
	return s.err
}

func useConfirmer(c fleet.Confirmer) {
	newConfirmer = func(_ io.Reader, _ io.Writer) fleet.Confirmer { return c }
}

var errBoom = errors.New("boom")
