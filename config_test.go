package eamvu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, Config{APITimeoutMS: 5000}.Timeout())
	assert.Equal(t, 30*time.Second, Config{}.Timeout())
	assert.Equal(t, 30*time.Second, Config{APITimeoutMS: -1}.Timeout())
}
