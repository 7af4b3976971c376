package calculator

import (
	"gopkg.in/ini.v1"
)

type Config struct {
	// 组装矩阵的并发数, 1 表示串行, <= 0 使用全部 CPU
	Workers int

	// 源强总和相对值 |Σ s·λ| / (V∞·周长) 的告警阈值, 0 关闭检查.
	// 钝尾缘面元被丢弃的翼型本身有约 2e-3 的开口泄漏
	LeakTolerance float64
}

var DefaultConfig = Config{
	Workers:       1,
	LeakTolerance: 5e-3,
}

// LoadConfig reads the [calculator] section, falling back to DefaultConfig
// for missing keys.
func LoadConfig(file *ini.File) Config {
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	return Config{
		Workers:       file.Section("calculator").Key("Workers").MustInt(DefaultConfig.Workers),
		LeakTolerance: file.Section("calculator").Key("LeakTolerance").MustFloat64(DefaultConfig.LeakTolerance),
	}
}
