// Package telemetry exports per-frame simulation state as CSV.
package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun/sim"
)

// FrameRecord is one sampled frame.
type FrameRecord struct {
	Frame         uint64  `csv:"frame"`
	Alive         bool    `csv:"alive"`
	PosX          float64 `csv:"pos_x"`
	PosY          float64 `csv:"pos_y"`
	Speed         float64 `csv:"speed"`
	Facing        float64 `csv:"facing"`
	Ammo          uint32  `csv:"ammo"`
	Stars         uint32  `csv:"stars"`
	Enemies       int     `csv:"enemies"`
	Projectiles   int     `csv:"projectiles"`
	Pickups       int     `csv:"pickups"`
	SpawnInterval float64 `csv:"spawn_interval_s"`
	EnemyMaxSpeed float64 `csv:"enemy_max_speed"`
	Shake         float64 `csv:"shake"`
	Events        int     `csv:"events"`
	Shots         int     `csv:"shots_total"`
	Kills         int     `csv:"kills_total"`
	Targets       int     `csv:"targets_total"`
}

// Sample builds a record from the world after the frame described by rep.
func Sample(w *sim.World, rep sim.FrameReport) FrameRecord {
	st := w.Stats()
	r := FrameRecord{
		Frame:         rep.Frame,
		Enemies:       w.EnemyCount(),
		Projectiles:   w.ProjectileCount(),
		Pickups:       w.PickupCount(),
		EnemyMaxSpeed: w.EnemyMaxSpeed(),
		Shake:         w.Camera().Shake,
		Events:        len(rep.Events),
		Shots:         st.Shots,
		Kills:         st.Kills,
		Targets:       st.TargetsReached,
	}
	if p, ok := w.Player(); ok {
		r.Alive = true
		r.PosX, r.PosY = p.Position.X, p.Position.Y
		r.Speed = core.Length(p.Velocity)
		r.Facing = p.Facing
		r.Ammo = p.Ammo
		r.Stars = p.Score
	}
	if s, ok := w.Spawner(); ok {
		r.SpawnInterval = s.Timer.Duration().Seconds()
	}
	return r
}

// Recorder writes every n-th frame record to an io.Writer.
// A nil Recorder discards everything.
type Recorder struct {
	out           io.Writer
	every         uint64
	headerWritten bool
	written       int
}

// NewRecorder returns a recorder sampling every n frames (n <= 1 keeps all).
// It returns nil when out is nil.
func NewRecorder(out io.Writer, every int) *Recorder {
	if out == nil {
		return nil
	}
	if every < 1 {
		every = 1
	}
	return &Recorder{out: out, every: uint64(every)} //#nosec G115 -- every is positive
}

// Record writes rec if its frame falls on the sampling interval.
func (r *Recorder) Record(rec FrameRecord) error {
	if r == nil || rec.Frame%r.every != 0 {
		return nil
	}

	records := []FrameRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("telemetry: writing frame: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
			return fmt.Errorf("telemetry: writing frame: %w", err)
		}
	}
	r.written++
	return nil
}

// Written returns the number of rows written so far.
func (r *Recorder) Written() int {
	if r == nil {
		return 0
	}
	return r.written
}
