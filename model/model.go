package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	TypeSolve  = "solve"
	TypeSolved = "solved"
	TypeSweep  = "sweep"
	TypeSwept  = "swept"
	TypePing   = "ping"
	TypePong   = "pong"
	TypeError  = "error"
)

// Geometry describes a body outline. Exactly one of Points, NACA or Circle
// is expected; Points wins when several are set.
type Geometry struct {
	Points           [][2]float64 `json:"points,omitempty" toml:"points"`
	NACA             string       `json:"naca,omitempty" toml:"naca"`
	PointsPerSurface int          `json:"points_per_surface,omitempty" toml:"points_per_surface"`
	Circle           *Circle      `json:"circle,omitempty" toml:"circle"`
}

type Circle struct {
	Radius    float64 `json:"radius" toml:"radius"`
	Divisions int     `json:"divisions" toml:"divisions"`
}

// 单个攻角计算请求
type SolveRequest struct {
	Method   string   `json:"method"`
	Velocity float64  `json:"velocity"`
	AlphaDeg float64  `json:"alpha_deg"`
	Geometry Geometry `json:"geometry"`
}

type PanelResult struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Cp       float64 `json:"cp"`
	Velocity float64 `json:"velocity"`
	Strength float64 `json:"strength"`
}

type SolveResponse struct {
	Method      string        `json:"method"`
	AlphaDeg    float64       `json:"alpha_deg"`
	Cl          float64       `json:"cl"`
	Cd          float64       `json:"cd"`
	Cm          *float64      `json:"cm,omitempty"`
	Accuracy    *float64      `json:"accuracy,omitempty"`
	Circulation *float64      `json:"circulation,omitempty"`
	Panels      []PanelResult `json:"panels"`
	DurationMs  int64         `json:"duration_ms"`
}

// 攻角扫描请求
type SweepRequest struct {
	Method      string   `json:"method"`
	Velocity    float64  `json:"velocity"`
	AlphaMinDeg float64  `json:"alpha_min_deg"`
	AlphaMaxDeg float64  `json:"alpha_max_deg"`
	StepDeg     float64  `json:"step_deg"`
	Geometry    Geometry `json:"geometry"`
}

type SweepPoint struct {
	AlphaDeg float64  `json:"alpha_deg"`
	Cl       float64  `json:"cl"`
	Cd       float64  `json:"cd"`
	Cm       *float64 `json:"cm,omitempty"`
}

type SweepResponse struct {
	Method string       `json:"method"`
	Points []SweepPoint `json:"points"`
}
