package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

func TestEnv_MapEnviron(t *testing.T) {
	t.Parallel()

	environ := input.MapEnviron{"PORT": "8080"}
	env := input.NewEnv(environ)

	assert.True(t, env.Has("PORT"))
	assert.False(t, env.Has("HOST"))

	port, err := env.GetAsInt("PORT")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	_, err = env.GetInt("PORT")
	assert.ErrorIs(t, err, input.ErrTypeMismatch)

	_, err = env.Get("HOST", nil)
	assert.ErrorIs(t, err, input.ErrMissingKey)

	require.NoError(t, env.SetBool("DEBUG", true))
	assert.Equal(t, "true", environ["DEBUG"])

	require.NoError(t, env.SetArray("HOSTS", input.Array{input.Text("a"), input.Text("b")}))
	hosts, err := env.GetString("HOSTS")
	require.NoError(t, err)
	assert.Equal(t, "a,b", hosts)

	assert.ErrorIs(t, env.SetString("BAD=KEY", "x"), input.ErrInvalidKey)
	assert.ErrorIs(t, env.SetString("", "x"), input.ErrInvalidKey)
}

func TestEnv_ReadsLiveEnvironment(t *testing.T) {
	t.Setenv("INPUTKIT_TEST_LIVE", "one")

	env := input.NewEnv(nil)
	v, err := env.GetString("INPUTKIT_TEST_LIVE")
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	require.NoError(t, os.Setenv("INPUTKIT_TEST_LIVE", "two"))
	v, err = env.GetString("INPUTKIT_TEST_LIVE")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	require.NoError(t, env.SetInt("INPUTKIT_TEST_LIVE", 3))
	assert.Equal(t, "3", os.Getenv("INPUTKIT_TEST_LIVE"))
}

func TestEnv_Bind(t *testing.T) {
	t.Parallel()

	type appConfig struct {
		Port  int      `env:"PORT" envDefault:"8080"`
		Name  string   `env:"NAME,required"`
		Hosts []string `env:"HOSTS" envSeparator:","`
	}

	env := input.NewEnv(input.MapEnviron{"NAME": "demo", "HOSTS": "a,b"})
	var cfg appConfig
	require.NoError(t, env.Bind(&cfg))
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, []string{"a", "b"}, cfg.Hosts)

	err := input.NewEnv(input.MapEnviron{}).Bind(&cfg)
	assert.ErrorIs(t, err, input.ErrBind)
}

func TestEnv_Dotenv(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=from_file\nB=2\n"), 0o600))

	environ := input.MapEnviron{"A": "existing"}
	env := input.NewEnv(environ)

	require.NoError(t, env.LoadDotenv(path))
	assert.Equal(t, "existing", environ["A"])
	assert.Equal(t, "2", environ["B"])

	require.NoError(t, env.OverloadDotenv(path))
	assert.Equal(t, "from_file", environ["A"])

	err := env.LoadDotenv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, input.ErrDotenv)
}
