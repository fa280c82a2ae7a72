// Package store persists saved calculator runs. The engine stays pure; the
// server writes through here after computing, keyed by a caller-supplied
// session id.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// ErrNotFound reports a session with no saved scenarios.
var ErrNotFound = errors.New("store: not found")

// SavedScenario is one persisted calculator run.
type SavedScenario struct {
	Calculator string            `json:"calculator"`
	Params     map[string]string `json:"params"`
	Result     *domain.Result    `json:"result"`
	SavedAt    time.Time         `json:"savedAt"`
}

// ScenarioStore saves and recalls calculator runs per session.
type ScenarioStore interface {
	Save(ctx context.Context, sessionID string, scenario SavedScenario) error
	List(ctx context.Context, sessionID string) ([]SavedScenario, error)
	Clear(ctx context.Context, sessionID string) error
}
