package tui

import (
	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/storage"
)

//go:generate go tool mockgen -destination=./mocks/recorder_mock.go -package=mocks . ScoreRecorder

// ScoreRecorder persists finished runs. *storage.Store implements it.
type ScoreRecorder interface {
	SaveRun(gameID string, run core.RunSummary) (string, error)
}

var _ ScoreRecorder = (*storage.Store)(nil)

// recorderFor avoids wrapping a nil store in a non-nil interface.
func recorderFor(store *storage.Store) ScoreRecorder {
	if store == nil {
		return nil
	}
	return store
}
