package envmode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWithDotenv(t *testing.T) {
	path := writeDotenv(t, `# comment
DOTENV_MODE=prod
DOTENV_PORT=3000
`)
	// godotenv loads into the process env; make sure the keys are cleaned up.
	t.Setenv("DOTENV_MODE", "")
	t.Setenv("DOTENV_PORT", "")
	os.Unsetenv("DOTENV_MODE")
	os.Unsetenv("DOTENV_PORT")

	env, err := New(WithModeVar("DOTENV_MODE"), WithDotenv(path))
	require.NoError(t, err)
	assert.Equal(t, "prod", env.Mode())

	port, err := env.Integer([]string{"DOTENV_PORT"})
	require.NoError(t, err)
	assert.Equal(t, 3000, port)
}

func TestWithDotenvEnvWins(t *testing.T) {
	path := writeDotenv(t, "DOTENV_NAME=from-file\n")
	t.Setenv("DOTENV_NAME", "from-env")

	env, err := New(WithDotenv(path))
	require.NoError(t, err)

	got, err := env.String([]string{"DOTENV_NAME"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestWithDotenvMissingFileIgnored(t *testing.T) {
	env, err := New(WithDotenv(filepath.Join(t.TempDir(), "no-such.env")))
	require.NoError(t, err)
	assert.Equal(t, "dev", env.Mode())
}
