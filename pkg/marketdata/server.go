package marketdata

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Server streams depth snapshots and trade prints to websocket clients.
type Server struct {
	log       *zap.Logger
	publisher *Publisher
	upgrader  websocket.Upgrader
}

func NewServer(log *zap.Logger, publisher *Publisher) *Server {
	return &Server{
		log:       log,
		publisher: publisher,
		upgrader:  websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/depth", s.handleDepth)
	mux.HandleFunc("/ws/trades", s.handleTrades)
	return mux
}

// ListenAndServe blocks serving the feed on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("market data feed listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleDepth(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := s.publisher.SubscribeDepth(16)
	defer s.publisher.UnsubscribeDepth(sub)

	for depth := range sub.C() {
		if err := conn.WriteJSON(depth); err != nil {
			return
		}
	}
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := s.publisher.SubscribeTrades(64)
	defer s.publisher.UnsubscribeTrades(sub)

	for print := range sub.C() {
		if err := conn.WriteJSON(print); err != nil {
			return
		}
	}
}
