package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// ViperSource implements the Source interface using the viper package for
// configuration files.
type ViperSource struct {
	v *viper.Viper
}

// NewViperSource returns a new ViperSource from the top level Viper object,
// i.e. it calls viper.GetViper(). The caller must configure the viper package
// beforehand.
func NewViperSource() *ViperSource {
	return &ViperSource{viper.GetViper()}
}

// NewViperSourceFromFile reads the configuration file at path with a private
// Viper instance. The format is derived from the extension, TOML being the
// one sigbench writes.
func NewViperSourceFromFile(path string) (*ViperSource, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Errorf("reading %s: %v", path, err)
	}
	return &ViperSource{v}, nil
}

// Defined returns true if the key is defined in the configuration file
func (v *ViperSource) Defined(key string) bool {
	return v.v != nil && v.v.IsSet(key)
}

// Sub returns a viper source which has a tighter scope. Viper returns nil for
// a missing section, which leaves a source where nothing is defined.
func (v *ViperSource) Sub(key string) Source {
	if v.v == nil {
		return &ViperSource{}
	}
	return &ViperSource{v.v.Sub(key)}
}

// String returns the given value under this key. Arrays are joined with
// commas so that SourceHub can split them again.
func (v *ViperSource) String(key string) string {
	if v.v == nil {
		return ""
	}
	if list, ok := v.v.Get(key).([]interface{}); ok {
		parts := make([]string, len(list))
		for i, e := range list {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	}
	return v.v.GetString(key)
}
