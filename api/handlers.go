package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"optionviz/models"
	"optionviz/strategy"
)

// AnalyzeRequest describes one strategy to chart. Strike2 and Premium2
// are consumed only by the two-legged templates. Zero values for
// DaysToExpiration, PriceRange and the premiums select the engine
// defaults (30 days, ±15%, synthetic premium).
type AnalyzeRequest struct {
	Template         string  `json:"template" binding:"required"`
	Strike           float64 `json:"strike" binding:"required,gt=0"`
	Strike2          float64 `json:"strike2"`
	CurrentPrice     float64 `json:"currentPrice" binding:"required,gt=0"`
	DaysToExpiration float64 `json:"daysToExpiration"`
	Premium          float64 `json:"premium"`
	Premium2         float64 `json:"premium2"`
	PriceRange       float64 `json:"priceRange"`
}

// AnalyzeResponse carries everything the charting layer renders.
type AnalyzeResponse struct {
	Strategy models.Strategy      `json:"strategy"`
	Curve    models.Curve         `json:"curve"`
	Stats    models.StrategyStats `json:"stats"`
}

func (s *Server) handleExpirations(c *gin.Context) {
	if s.market == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "market data is not configured"})
		return
	}

	symbol := c.Param("symbol")
	expirations, err := s.market.GetExpirations(symbol)
	if err != nil {
		s.log.Error().Err(err).Str("symbol", symbol).Msg("expirations fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "expirations": expirations})
}

func (s *Server) handleChain(c *gin.Context) {
	if s.market == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "market data is not configured"})
		return
	}

	symbol := c.Param("symbol")
	expiration := c.Query("expiration")
	if expiration == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration query parameter is required"})
		return
	}

	chain, err := s.market.GetChain(symbol, expiration)
	if err != nil {
		s.log.Error().Err(err).Str("symbol", symbol).Str("expiration", expiration).Msg("chain fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chain)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	built, err := strategy.Build(req.Template, req.Strike, req.Strike2,
		req.CurrentPrice, req.DaysToExpiration, req.Premium, req.Premium2)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	curve := strategy.GenerateCurve(built, req.CurrentPrice, req.PriceRange)
	stats := strategy.ExtractStats(curve)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Strategy: built,
		Curve:    curve,
		Stats:    stats,
	})
}
