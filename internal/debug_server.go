package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"queue-bot/contract"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.Worker = (*DebugServer)(nil)

const defaultPrefix = "doc:"

type InspectRow struct {
	Key   string          `json:"key"`
	Size  int             `json:"size"`
	Value json.RawMessage `json:"value"`
}

type StatsProvider func() map[string]any

// DebugServer exposes the raw store documents and the live stats of the bot as JSON.
// It is read only and meant for operators, never for users.
type DebugServer struct {
	log   *slog.Logger
	db    *badger.DB
	port  int
	stats StatsProvider
}

func NewDebugServer(log *slog.Logger, db *badger.DB, port int, stats StatsProvider) *DebugServer {
	return &DebugServer{log: log, db: db, port: port, stats: stats}
}

func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspect", s.inspect)
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := map[string]any{}
		if s.stats != nil {
			stats = s.stats()
		}
		writeJSON(w, stats)
	})
	return mux
}

// Run serves until ctx is done.
func (s *DebugServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting debug server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("debug server error: %w", err)
	}
}

func (s *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = defaultPrefix
	}

	rows := []InspectRow{}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				row := InspectRow{Key: string(item.KeyCopy(nil)), Size: len(val)}
				if json.Valid(val) {
					row.Value = append(json.RawMessage(nil), val...)
				}
				rows = append(rows, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("Unable to read the store", "prefix", prefix, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(v)
}
