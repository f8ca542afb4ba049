// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	// SitedescHomeDir is the directory under the user home holding config and cache
	SitedescHomeDir = ".sitedesc"
	// EnvPrefix prefixes the environment variables overriding flags
	EnvPrefix = "SITEDESC"
)

// initConfig layers flags over environment over the config file.
// An explicitly requested config file must exist, the default one may not.
func initConfig(vip *viper.Viper, cfgFile string) error {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if cfgFile != "" {
		vip.SetConfigFile(cfgFile)
	} else {
		userHomeDir, err := os.UserHomeDir()
		if err != nil {
			klog.Warningf("no home directory, skipping default config file: %v\n", err)
			return nil
		}
		vip.AddConfigPath(filepath.Join(userHomeDir, SitedescHomeDir))
		vip.SetConfigName("config")
		vip.SetConfigType("yaml")
	}

	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			klog.V(4).Info("no config file found, using flags and environment")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	klog.Infof("Using config file: %s", vip.ConfigFileUsed())
	return nil
}

func defaultCacheDir() string {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	// default value $HOME/.sitedesc/cache
	return filepath.Join(userHomeDir, SitedescHomeDir, "cache")
}
