package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved picklist configuration.
type Config interface {
	BasePath() string
	PerPage() int
	SortOrder() string
	Locale() string
	Selected() string
	Hidden() []string
}

// LoadConfig reads .picklist.yaml from PICKLIST_CONFIG_PATH or the working
// directory. Every key can be overridden with a PICKLIST_ environment
// variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.picklist.db")
	v.SetDefault("per_page", 10)
	v.SetDefault("sort", "timestamp:desc")
	v.SetDefault("locale", "en")
	v.SetDefault("selected", "")
	v.SetDefault("hidden", []string{})
	v.SetConfigName(".picklist") // .yaml is implicit
	v.SetEnvPrefix("PICKLIST")
	v.AutomaticEnv()

	if override := os.Getenv("PICKLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:         path,
		PageSize:     v.GetInt("per_page"),
		Sort:         v.GetString("sort"),
		Lang:         v.GetString("locale"),
		SelectedName: v.GetString("selected"),
		HiddenTags:   v.GetStringSlice("hidden"),
	}, nil
}

type fileConfig struct {
	Path         string   `json:"path"`
	PageSize     int      `json:"per_page"`
	Sort         string   `json:"sort"`
	Lang         string   `json:"locale"`
	SelectedName string   `json:"selected"`
	HiddenTags   []string `json:"hidden"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) PerPage() int      { return f.PageSize }
func (f *fileConfig) SortOrder() string { return f.Sort }
func (f *fileConfig) Locale() string    { return f.Lang }
func (f *fileConfig) Selected() string  { return f.SelectedName }
func (f *fileConfig) Hidden() []string  { return f.HiddenTags }
