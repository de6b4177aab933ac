package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

type mockFlagSet struct {
	value string
	err   error
}

func (m *mockFlagSet) GetString(f string) (string, error) {
	return m.value, m.err
}

func TestGetStringFlagOrDefault(t *testing.T) {
	t.Run("returns the flag value when set", func(t *testing.T) {
		v := GetStringFlagOrDefault(&mockFlagSet{value: "flag-value"}, "f", "default")
		assert.Equal(t, "flag-value", v)
	})

	t.Run("returns the default when the flag is empty", func(t *testing.T) {
		v := GetStringFlagOrDefault(&mockFlagSet{}, "f", "default")
		assert.Equal(t, "default", v)
	})

	t.Run("returns the default when the lookup fails", func(t *testing.T) {
		v := GetStringFlagOrDefault(&mockFlagSet{err: errors.New("unknown flag")}, "f", "default")
		assert.Equal(t, "default", v)
	})
}

func Test_loadConfig(t *testing.T) {
	t.Run("ignores a missing file", func(t *testing.T) {
		assert.NoError(t, loadConfig(filepath.Join(t.TempDir(), "missing.toml")))
	})

	t.Run("ignores a directory", func(t *testing.T) {
		assert.NoError(t, loadConfig(t.TempDir()))
	})

	t.Run("merges an existing file", func(t *testing.T) {
		viper.Reset()
		viper.SetConfigType("toml")

		path := filepath.Join(t.TempDir(), "config.toml")
		assert.NoError(t, os.WriteFile(path, []byte("[github]\ntoken = \"secret\"\n"), 0o600))

		assert.NoError(t, loadConfig(path))
		assert.Equal(t, "secret", viper.GetString("github.token"))
	})
}

func TestLoad(t *testing.T) {
	oldGetGlobalConfigPath := getGlobalConfigPath
	defer func() { getGlobalConfigPath = oldGetGlobalConfigPath }()

	t.Run("fails when the home directory is unknown", func(t *testing.T) {
		getGlobalConfigPath = func() (string, error) {
			return "", errors.New("no home")
		}

		assert.ErrorIs(t, Load(), ErrHomeDirNotFound)
	})

	t.Run("applies defaults without any config file", func(t *testing.T) {
		viper.Reset()
		getGlobalConfigPath = func() (string, error) {
			return filepath.Join(t.TempDir(), "config.toml"), nil
		}

		assert.NoError(t, Load())
		assert.Equal(t, "", viper.GetString("github.token"))
		assert.Equal(t, "", viper.GetString("github.api_url"))
	})

	t.Run("local values win over global ones", func(t *testing.T) {
		viper.Reset()

		globalPath := filepath.Join(t.TempDir(), "config.toml")
		assert.NoError(t, os.WriteFile(globalPath,
			[]byte("[github]\ntoken = \"global\"\n"), 0o600))
		getGlobalConfigPath = func() (string, error) { return globalPath, nil }

		local := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(local, ".ghapicfg"),
			[]byte("[github]\ntoken = \"local\"\n"), 0o600))

		wd, err := os.Getwd()
		assert.NoError(t, err)
		assert.NoError(t, os.Chdir(local))
		defer os.Chdir(wd)

		assert.NoError(t, Load())
		assert.Equal(t, "local", viper.GetString("github.token"))
	})
}
