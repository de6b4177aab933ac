package configutil

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("config file is a directory")
)

var getGlobalConfigPath = func() (string, error) {
	return homedir.Expand("~/.config/ghapi/config.toml")
}

var loadConfig = func(filename string) error {
	info, err := os.Stat(filename)
	if err != nil || info.IsDir() {
		// Missing config files are fine, every value has a default.
		return nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "cannot open config file "+filename)
	}
	defer f.Close()

	return viper.MergeConfig(f)
}

// Load merges the global config file with a repository-local one.
// Local values win.
func Load() error {
	viper.SetConfigType("toml")
	viper.SetDefault("github.token", "")
	viper.SetDefault("github.api_url", "")

	globalPath, err := getGlobalConfigPath()
	if err != nil {
		return ErrHomeDirNotFound
	}

	if err := loadConfig(globalPath); err != nil {
		return err
	}

	return loadConfig(".ghapicfg")
}

// StringFlagGetter is the subset of pflag.FlagSet the helpers need.
type StringFlagGetter interface {
	GetString(string) (string, error)
}

func GetStringFlagOrDefault(flags StringFlagGetter, flag, d string) string {
	s, err := flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}
