package storage

import (
	"github.com/charmbracelet/log"
)

// Recorder adapts a Store to the engine's score sink. Persistence failures
// are logged and swallowed so a broken database never interrupts play.
type Recorder struct {
	store  *Store
	logger *log.Logger
}

// NewRecorder wraps the store. A nil store yields a no-op recorder, which is
// what the game falls back to when the database cannot be opened.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// Record saves the score, ignoring any error beyond a log line.
func (r *Recorder) Record(score int) {
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveScore(score); err != nil && r.logger != nil {
		r.logger.Warn("could not save score", "err", err)
	}
}
