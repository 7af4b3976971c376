package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"panel/calculator"
	"panel/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	analysis *Analysis
}

func NewServer(addr string, upgrader websocket.Upgrader, analysis *Analysis) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		analysis: analysis,
	}
}

// NewServerFromConfig wires a server from the [server] and [calculator]
// sections.
func NewServerFromConfig(cfg Config, calc calculator.Config) *Server {
	return NewServer(cfg.Addr, cfg.Upgrader(), NewAnalysis(calc, cfg.MaxSweepPoints, cfg.MaxPanels))
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket 升级失败")
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.analysis)
	defer hub.Close()
	log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已连接")

	go hub.handleRequest()
	go hub.handleResponse()
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("读取消息失败")
			}
			log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已断开")
			return
		}
		if !hub.push(msg) {
			return
		}
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}
