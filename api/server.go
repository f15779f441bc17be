// Package api exposes the analytics engine and the market-data
// collaborator over HTTP for the charting front end.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"optionviz/tradier"
)

// Server wires the HTTP routes to the market-data client and the
// analytics engine.
type Server struct {
	market *tradier.Client
	log    zerolog.Logger
	router *gin.Engine
}

// NewServer builds the router. market may be nil, in which case the two
// market-data routes respond 503 and only /api/analyze is usable.
func NewServer(market *tradier.Client, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		market: market,
		log:    log,
		router: router,
	}

	router.GET("/api/expirations/:symbol", s.handleExpirations)
	router.GET("/api/chain/:symbol", s.handleChain)
	router.POST("/api/analyze", s.handleAnalyze)

	return s
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info().Str("addr", addr).Msg("starting http server")
	return s.router.Run(addr)
}
