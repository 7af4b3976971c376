package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"gopkg.in/ini.v1"
)

type Config struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
	// 单次扫描最多的攻角数
	MaxSweepPoints int
	// 单次请求最多的边界点数
	MaxPanels int
}

var DefaultConfig = Config{
	Addr:            ":9000",
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	MaxSweepPoints:  361,
	MaxPanels:       2000,
}

func LoadConfig(file *ini.File) Config {
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	section := file.Section("server")
	return Config{
		Addr:            section.Key("Addr").MustString(DefaultConfig.Addr),
		ReadBufferSize:  section.Key("ReadBufferSize").MustInt(DefaultConfig.ReadBufferSize),
		WriteBufferSize: section.Key("WriteBufferSize").MustInt(DefaultConfig.WriteBufferSize),
		MaxSweepPoints:  section.Key("MaxSweepPoints").MustInt(DefaultConfig.MaxSweepPoints),
		MaxPanels:       section.Key("MaxPanels").MustInt(DefaultConfig.MaxPanels),
	}
}

// Upgrader accepts every origin, clients are expected on other hosts.
func (cfg Config) Upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}
