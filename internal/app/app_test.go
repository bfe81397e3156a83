package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	// Set required environment variables for test
	os.Setenv("BOT_TOKEN", "123456:test-token")
	os.Setenv("ADMIN_IDS", "42")
	defer func() {
		os.Unsetenv("BOT_TOKEN")
		os.Unsetenv("ADMIN_IDS")
	}()

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}
