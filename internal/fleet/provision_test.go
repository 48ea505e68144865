package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/hhm/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Prefix:       "game",
		APIKey:       "secret",
		SSHKeys:      []string{"laptop", "ci"},
		Image:        "ubuntu-24.04",
		InstanceType: "cx22",
		Zone:         "fsn1",
		CloudInit:    "#cloud-config\nhostname: game-%HHM_ID%\nruncmd:\n  - echo %HHM_ID% > /etc/fleet-id\n",
		Labels:       map[string]string{"app": "game"},
	}
}

func sequence(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i]
		i++
		return id
	}
}

func TestProvisioner_Spec(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	p := NewProvisioner(&fakeProvider{}, cfg)

	spec := p.Spec("abc12345")

	assert.Equal(t, "ubuntu-24.04", spec.Image)
	assert.Equal(t, "cx22", spec.ServerType)
	assert.Equal(t, "fsn1", spec.Location)
	assert.Equal(t, []string{"laptop", "ci"}, spec.SSHKeys)
	assert.Equal(t, "#cloud-config\nhostname: game-abc12345\nruncmd:\n  - echo abc12345 > /etc/fleet-id\n", spec.UserData)
	assert.Equal(t, map[string]string{"app": "game"}, spec.Labels)

	// The spec must not alias the configuration.
	spec.Labels["app"] = "changed"
	spec.SSHKeys[0] = "changed"
	assert.Equal(t, "game", cfg.Labels["app"])
	assert.Equal(t, "laptop", cfg.SSHKeys[0])
}

func TestProvisioner_Provision(t *testing.T) {
	t.Parallel()
	fp := &fakeProvider{}
	p := NewProvisioner(fp, testConfig(), WithIdentityFunc(sequence("abc12345")))

	inst, err := p.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "game-abc12345", inst.Name)

	require.Len(t, fp.creates, 1)
	assert.Equal(t, "game-abc12345", fp.creates[0].Name)
	assert.Contains(t, fp.creates[0].Spec.UserData, "hostname: game-abc12345")
}

func TestProvisioner_Provision_ProviderError(t *testing.T) {
	t.Parallel()
	fp := &fakeProvider{failCreateAt: 1}
	p := NewProvisioner(fp, testConfig(), WithIdentityFunc(sequence("abc12345")))

	_, err := p.Provision(context.Background())
	require.Error(t, err)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OpCreate, perr.Op)
	assert.Equal(t, "game-abc12345", perr.Target)
	assert.Equal(t, "failed to create server game-abc12345: quota exceeded", err.Error())
}

func TestNewProvisioner_DefaultIdentity(t *testing.T) {
	t.Parallel()
	fp := &fakeProvider{}
	p := NewProvisioner(fp, testConfig())

	a, err := p.Provision(context.Background())
	require.NoError(t, err)
	b, err := p.Provision(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, `^game-[a-z0-9]{8}$`, a.Name)
	assert.Regexp(t, `^game-[a-z0-9]{8}$`, b.Name)
	assert.NotEqual(t, a.Name, b.Name)
}
