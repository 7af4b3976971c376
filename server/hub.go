package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"panel/model"
)

// Hub serves one connection: requests are routed by handleRequest and all
// writes happen in handleResponse.
type Hub struct {
	analysis *Analysis
	conn     *websocket.Conn
	// request
	msg chan model.Msg
	// response
	solve chan model.SolveRequest
	sweep chan model.SweepRequest
	reply chan model.Msg

	done      chan struct{}
	closeOnce sync.Once
}

func NewHub(conn *websocket.Conn, analysis *Analysis) *Hub {
	return &Hub{
		analysis: analysis,
		conn:     conn,
		msg:      make(chan model.Msg, 10),
		solve:    make(chan model.SolveRequest, 10),
		sweep:    make(chan model.SweepRequest, 10),
		reply:    make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) push(msg model.Msg) bool {
	select {
	case h.msg <- msg:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case model.TypeSolve:
				var req model.SolveRequest
				if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
					h.fail(fmt.Errorf("bad solve request: %w", err))
					continue
				}
				select {
				case h.solve <- req:
				case <-h.done:
					return
				}
			case model.TypeSweep:
				var req model.SweepRequest
				if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
					h.fail(fmt.Errorf("bad sweep request: %w", err))
					continue
				}
				select {
				case h.sweep <- req:
				case <-h.done:
					return
				}
			case model.TypePing:
				h.sendReply(model.Msg{Type: model.TypePong, Content: msg.Content})
			default:
				log.WithField("type", msg.Type).Warn("no such type")
				h.fail(fmt.Errorf("no such type %q", msg.Type))
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) sendReply(reply model.Msg) {
	select {
	case h.reply <- reply:
	case <-h.done:
	}
}

func (h *Hub) fail(err error) {
	h.sendReply(model.Msg{Type: model.TypeError, Content: err.Error()})
}

func (h *Hub) handleResponse() {
	for {
		select {
		case req := <-h.solve:
			resp, err := h.analysis.Solve(req)
			if err != nil {
				h.write(errorMsg(err))
				continue
			}
			h.write(contentMsg(model.TypeSolved, resp))
		case req := <-h.sweep:
			resp, err := h.analysis.Sweep(req)
			if err != nil {
				h.write(errorMsg(err))
				continue
			}
			h.write(contentMsg(model.TypeSwept, resp))
		case reply := <-h.reply:
			h.write(reply)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.WithError(err).WithField("type", reply.Type).Error("写回消息失败")
		h.Close()
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.TypeError, Content: err.Error()}
}

func contentMsg(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{Type: typ, Content: string(data)}
}
