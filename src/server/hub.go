package server

import (
	"encoding/json"
	"net/http"

	"token-radar/src/models"
	"token-radar/src/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop. All client bookkeeping and all
// snapshot fan-out happens on this single goroutine, so a tick's snapshots
// are always derived from exactly one consistent feed update.
func (s *TableServer) handleWebsockets() {
	for {
		select {
		case <-s.done:
			return

		case client := <-s.register:
			s.clients[client] = struct{}{}
			s.connCount.Add(1)

			// Send initial state on connect
			s.stateMutex.RLock()
			snapshot := s.snapshotForView(client.View(), snapshotTypeLocked(s.loaded, s.feedErr, models.SnapshotInitial))
			s.stateMutex.RUnlock()
			client.send <- snapshot

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				s.connCount.Add(-1)
				close(client.send)
			}

		case update := <-s.broadcast:
			// Commit the update, then fan out per-view snapshots
			s.stateMutex.Lock()
			s.commitLocked(update)
			s.stateMutex.Unlock()

			s.history.Record(update)

			s.stateMutex.RLock()
			for client := range s.clients {
				snapshot := s.snapshotForView(client.View(), snapshotTypeLocked(s.loaded, s.feedErr, models.SnapshotUpdate))
				select {
				case client.send <- snapshot:
					// Snapshot sent successfully
				default:
					// Client too slow, disconnect to prevent Hub blocking
					delete(s.clients, client)
					s.connCount.Add(-1)
					close(client.send)
				}
			}
			s.stateMutex.RUnlock()
		}
	}
}

// -----------------------------------------------------------------------------
// Data Exchange Interface Implementation
// -----------------------------------------------------------------------------

// SetInitialState seeds the latest update without broadcasting. Used once the
// initial load finishes (or fails) before any ticks flow.
func (s *TableServer) SetInitialState(update *models.MFeedUpdate) {
	s.stateMutex.Lock()
	s.commitLocked(update)
	s.stateMutex.Unlock()

	if update != nil && update.Err == "" {
		s.history.Record(update)
	}
}

// -----------------------------------------------------------------------------

// Broadcast enqueues a feed update for the Hub loop.
func (s *TableServer) Broadcast(update *models.MFeedUpdate) {
	if update == nil {
		return
	}

	// Non-blocking is unnecessary: the queue is large and the Hub loop only
	// does in-memory derivation, so it drains far faster than the tick rate.
	select {
	case s.broadcast <- update:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------

// commitLocked replaces the cached feed state. Caller holds stateMutex.
func (s *TableServer) commitLocked(update *models.MFeedUpdate) {
	if update == nil {
		return
	}
	if update.Err != "" {
		s.feedErr = update.Err
		return
	}
	s.state = update
	s.loaded = true
	s.feedErr = ""
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *TableServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		view: s.defaultView,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan *models.MTableSnapshot, 256),
	}

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------

// dropClient hands a client back to the hub, or discards it when the server
// has already stopped.
func (s *TableServer) dropClient(client *Client) {
	select {
	case s.unregister <- client:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

// HandleClientMessage applies a view command from one client: sort-key clicks
// resolve through the toggle semantics, tab and advanced-filter changes
// replace the client's view. The reply is a fresh INITIAL snapshot for the
// new view.
func (s *TableServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MViewCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "view" {
		return
	}

	view := client.View()

	if cmd.SortKey != "" && validSortKey(cmd.SortKey) {
		view.Sort = pipeline.NextSort(view.Sort, cmd.SortKey)
	}
	if cmd.Stage != "" && validStage(cmd.Stage) {
		view.Stage = cmd.Stage
	}
	if cmd.Chains != nil || cmd.MinAuditScore > 0 {
		// Criteria commands replace the whole criteria set, so clearing the
		// modal clears both the chain list and the score floor. Unknown
		// chains are dropped rather than filtering everything out silently.
		chains := make([]models.MChain, 0, len(cmd.Chains))
		for _, ch := range cmd.Chains {
			if !validChain(ch) {
				s.Logger.Warning("Ignoring unknown chain in view command: %s", ch)
				continue
			}
			chains = append(chains, ch)
		}
		view.Criteria = models.MFilterCriteria{
			Chains:        chains,
			MinAuditScore: cmd.MinAuditScore,
		}
	}

	client.SetView(view)

	s.stateMutex.RLock()
	snapshot := s.snapshotForView(view, snapshotTypeLocked(s.loaded, s.feedErr, models.SnapshotInitial))
	s.stateMutex.RUnlock()

	// Send response to client
	// Use select to avoid blocking if client's send buffer is full
	select {
	case client.send <- snapshot:
	default:
		// Client buffer full; the next broadcast will carry the new view.
	}
}
