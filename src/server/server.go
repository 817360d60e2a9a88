package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"token-radar/src/logger"
	"token-radar/src/models"
	"token-radar/src/pipeline"
	"token-radar/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// TableServer
// -----------------------------------------------------------------------------

type TableServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	engine *gin.Engine

	defaultView models.MViewState
	history     *utils.PriceHistory

	// WebSocket clients (clients map is owned by the hub goroutine)
	clients    map[*Client]struct{}
	broadcast  chan *models.MFeedUpdate // Strongly typed and Buffered Queue
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	connCount  atomic.Int64

	// Local cache of the latest feed update
	state      *models.MFeedUpdate
	loaded     bool
	feedErr    string
	stateMutex sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewTableServer(cfg *models.MConfig, log *logger.Logger, defaultView models.MViewState) *TableServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &TableServer{
		Config:      cfg,
		Logger:      log,
		engine:      gin.Default(),
		defaultView: defaultView,
		history:     utils.NewPriceHistory(cfg.Feed.HistoryPoints),
		clients:     make(map[*Client]struct{}),
		// Buffered channel to prevent lock/blocking
		// Queue size of 256 ensures we can handle bursts of updates
		broadcast:  make(chan *models.MFeedUpdate, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *TableServer) setupRoutes() {
	// Embedded dashboard
	s.engine.GET("/", s.getDashboard)

	// REST API endpoints
	s.engine.GET("/api/tokens", s.getTokens)
	s.engine.GET("/api/tokens/:id", s.getTokenDetail)
	s.engine.GET("/api/tabs", s.getTabs)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/health", s.getHealth)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *TableServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *TableServer) Stop() error {
	// Clean shutdown. Only the done channel is closed; the hub channels stay
	// open so a pump's in-flight unregister cannot hit a closed channel.
	close(s.done)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

// getTokens derives a sorted/filtered snapshot on demand. Query params mirror
// the view commands clients send over the WebSocket.
func (s *TableServer) getTokens(c *gin.Context) {
	view := s.defaultView

	if key := c.Query("sort"); key != "" {
		if !validSortKey(models.MSortKey(key)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown sort key: %s", key)})
			return
		}
		view.Sort.Key = models.MSortKey(key)
		view.Sort.Direction = models.DefaultDirectionFor(view.Sort.Key)
	}
	if dir := c.Query("dir"); dir != "" {
		if dir != string(models.SortAsc) && dir != string(models.SortDesc) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown sort direction: %s", dir)})
			return
		}
		view.Sort.Direction = models.MSortDirection(dir)
	}
	if stage := c.Query("stage"); stage != "" {
		if !validStage(models.MStage(stage)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown stage: %s", stage)})
			return
		}
		view.Stage = models.MStage(stage)
	}
	if chains := c.Query("chains"); chains != "" {
		for _, raw := range strings.Split(chains, ",") {
			ch := models.MChain(strings.TrimSpace(raw))
			if !validChain(ch) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown chain: %s", ch)})
				return
			}
			view.Criteria.Chains = append(view.Criteria.Chains, ch)
		}
	}
	if minScore := c.Query("min_score"); minScore != "" {
		n, err := strconv.Atoi(minScore)
		if err != nil || n < 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid min_score: %s", minScore)})
			return
		}
		view.Criteria.MinAuditScore = n
	}

	c.JSON(http.StatusOK, s.SnapshotFor(view, models.SnapshotInitial))
}

// -----------------------------------------------------------------------------

// getTokenDetail serves the row modal: the record, its score breakdown and
// recent tick history.
func (s *TableServer) getTokenDetail(c *gin.Context) {
	id := c.Param("id")

	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	if !s.loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data is still loading"})
		return
	}

	for _, rec := range s.state.Records {
		if rec.ID != id {
			continue
		}

		detail := models.MTokenDetail{
			Row:            s.rowFor(rec),
			Score:          pipeline.ScoreBreakdown(rec),
			MarketCapExact: utils.FormatUSD(rec.MarketCap),
			LiquidityExact: utils.FormatUSD(rec.Liquidity),
			History:        s.history.Latest(id, s.Config.Feed.HistoryPoints),
		}
		c.JSON(http.StatusOK, detail)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown token id: %s", id)})
}

// -----------------------------------------------------------------------------

func (s *TableServer) getTabs(c *gin.Context) {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	if !s.loaded {
		c.JSON(http.StatusOK, models.MTabCounts{})
		return
	}
	c.JSON(http.StatusOK, pipeline.StageCounts(s.state.Records))
}

// -----------------------------------------------------------------------------

func (s *TableServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sort_keys":        models.SortKeys,
		"stages":           models.Stages,
		"chains":           models.Chains,
		"default_view":     s.defaultView,
		"tick_interval_ms": s.Config.Feed.TickIntervalMs,
	})
}

// -----------------------------------------------------------------------------

func (s *TableServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	status := "loading"
	var lastUpdate int64
	if s.feedErr != "" {
		status = "error"
	} else if s.loaded {
		status = "ok"
		lastUpdate = s.state.Timestamp
	}
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":         status,
		"connections":    s.clientCount(),
		"latest_update":  lastUpdate,
		"tracked_tokens": s.history.Tracked(),
	})
}

// -----------------------------------------------------------------------------

func (s *TableServer) clientCount() int {
	return int(s.connCount.Load())
}

// -----------------------------------------------------------------------------

func validSortKey(k models.MSortKey) bool {
	for _, known := range models.SortKeys {
		if known == k {
			return true
		}
	}
	return false
}

func validChain(ch models.MChain) bool {
	for _, known := range models.Chains {
		if known == ch {
			return true
		}
	}
	return false
}

func validStage(stage models.MStage) bool {
	if stage == models.StageAll {
		return true
	}
	for _, s := range models.Stages {
		if s == stage {
			return true
		}
	}
	return false
}
