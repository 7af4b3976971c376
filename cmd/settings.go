package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"panel/calculator"
	"panel/plotting"
	"panel/server"
)

// Settings is the runtime configuration read from the ini file.
type Settings struct {
	Calculator calculator.Config
	Server     server.Config
	Plotting   plotting.Config
	LogLevel   log.Level
}

// LoadSettings reads path; a missing file gives the defaults.
func LoadSettings(path string) (*Settings, error) {
	file := ini.Empty()
	if path != "" {
		f, err := ini.Load(path)
		switch {
		case err == nil:
			file = f
		case errors.Is(err, fs.ErrNotExist):
			log.WithField("file", path).Warn("配置文件不存在, 使用默认配置")
		default:
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	level, err := log.ParseLevel(file.Section("log").Key("Level").MustString("info"))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &Settings{
		Calculator: calculator.LoadConfig(file),
		Server:     server.LoadConfig(file),
		Plotting:   plotting.LoadConfig(file),
		LogLevel:   level,
	}, nil
}
