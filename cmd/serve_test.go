package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeAddressComesFromConfig(t *testing.T) {
	// The flag defaults flow through the bound config keys.
	assert.Equal(t, "0.0.0.0", viper.GetString("server.host"))
	assert.Equal(t, 8000, viper.GetInt("server.port"))

	// A flag set on the command line shadows the config value.
	require.NoError(t, serveCmd.Flags().Set("port", "9090"))
	defer func() {
		require.NoError(t, serveCmd.Flags().Set("port", "8000"))
	}()

	assert.Equal(t, 9090, viper.GetInt("server.port"))
}
