package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, maestroYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(maestroYAML), 0o644))
	return dir
}

func TestInitializeMinimalConfig(t *testing.T) {
	dir := writeConfigDir(t, "agents: {}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in agents and providers are present
	assert.True(t, cfg.AgentRegistry.Has("builder"))
	assert.True(t, cfg.AgentRegistry.Has("research"))
	assert.True(t, cfg.LLMProviderRegistry.HasTier("ULTRA_PREMIUM"))

	// Defaults resolved
	assert.Equal(t, "builder", cfg.Defaults.Agent)
	assert.Equal(t, "budget", cfg.Defaults.RoutingPolicy)
	assert.InDelta(t, 0.6, cfg.Defaults.ContextStripThreshold, 1e-9)
	assert.True(t, cfg.Defaults.Masking.Enabled)

	// Subsystem defaults applied
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.InDelta(t, 50, cfg.Budget.AutoApprovalLimit, 1e-9)
	assert.Equal(t, 2000, cfg.Memory.MidTermCap)
}

func TestInitializeUserOverrides(t *testing.T) {
	dir := writeConfigDir(t, `
agents:
  builder:
    description: Custom builder
    capabilities: [coding]
    monthly_limit: 500
defaults:
  agent: research
queue:
  worker_count: 2
budget:
  default_monthly_limit: 750
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	builder, err := cfg.GetAgent("builder")
	require.NoError(t, err)
	assert.Equal(t, "Custom builder", builder.Description)
	require.NotNil(t, builder.MonthlyLimit)
	assert.InDelta(t, 500, *builder.MonthlyLimit, 1e-9)

	assert.Equal(t, "research", cfg.Defaults.Agent)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.InDelta(t, 750, cfg.Budget.DefaultMonthlyLimit, 1e-9)
}

func TestInitializeMissingConfigDir(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("MAESTRO_TEST_SECRET", "s3cret")

	out := ExpandEnv([]byte("secret: {{.MAESTRO_TEST_SECRET}}"))
	assert.Equal(t, "secret: s3cret", string(out))

	// Literal $ preserved
	out = ExpandEnv([]byte(`pattern: "^secret.*$"`))
	assert.Equal(t, `pattern: "^secret.*$"`, string(out))

	// Missing variables expand to empty string
	out = ExpandEnv([]byte("value: {{.MAESTRO_TEST_UNSET_VAR}}"))
	assert.Equal(t, "value: ", string(out))
}
