package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the journal location. Order: MOMO_PATH env, a .momo
// config file in the working directory (or MOMO_CONFIG_PATH), then the
// default of ~/.momo.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.momo.db")
	viper.SetConfigName(".momo") // .yaml is implicit
	viper.SetEnvPrefix("MOMO")
	viper.AutomaticEnv()

	if override := os.Getenv("MOMO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
