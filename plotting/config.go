package plotting

import (
	"gopkg.in/ini.v1"
)

// 图片尺寸, 单位 cm
type Config struct {
	Width  float64
	Height float64
}

var DefaultConfig = Config{
	Width:  16,
	Height: 10,
}

func LoadConfig(file *ini.File) Config {
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	section := file.Section("plotting")
	return Config{
		Width:  section.Key("Width").MustFloat64(DefaultConfig.Width),
		Height: section.Key("Height").MustFloat64(DefaultConfig.Height),
	}
}
