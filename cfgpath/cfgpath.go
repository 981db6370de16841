// Package cfgpath locates the per-user configuration directory of an
// application.
package cfgpath

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"go.dedis.ch/sigbench/log"
)

// GetConfigPath returns the directory holding the configuration files of
// the application:
//
//   Linux, FreeBSD: $XDG_CONFIG_HOME/appName or $HOME/.config/appName
//   macOS:          $HOME/Library/Application Support/appName
//   Windows:        %AppData%/appName
//   Other:          ./appName
func GetConfigPath(appName string) string {
	if len(appName) == 0 {
		log.Panic("appName cannot be empty")
	}

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return currentDir(appName)
	case "linux", "freebsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
	}

	home, ok := homeDir()
	if !ok {
		log.Warn("Could not find the home directory. Switching back to current dir.")
		return currentDir(appName)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	case "linux", "freebsd":
		return filepath.Join(home, ".config", appName)
	}
	return currentDir(appName)
}

// GetConfigFile returns the path of fileName inside the configuration
// directory of the application.
func GetConfigFile(appName, fileName string) string {
	return filepath.Join(GetConfigPath(appName), fileName)
}

func homeDir() (string, bool) {
	if home := os.Getenv("HOME"); home != "" {
		return home, true
	}
	u, err := user.Current()
	if err != nil || u.HomeDir == "" {
		return "", false
	}
	return u.HomeDir, true
}

func currentDir(appName string) string {
	curr, err := os.Getwd()
	if err != nil {
		log.Panic("impossible to get the current directory:", err)
	}
	return filepath.Join(curr, appName)
}
