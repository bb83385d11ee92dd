package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/fuelrun/internal/core"
)

func TestShakeDecaysToZero(t *testing.T) {
	w := NewWorld(quietTuning(), 4)
	w.TriggerShake(4)

	// Expected number of frames until the magnitude snaps to zero.
	frames := 0
	for m := 4.0; m > 0; frames++ {
		if m < w.tuning.ShakeFloor {
			m = 0
		} else {
			m *= w.tuning.ShakeDecay
		}
	}

	for i := 0; i < frames-1; i++ {
		w.Step(Input{}, frameDelta)
		if w.Camera().Shake <= 0 {
			t.Fatalf("shake ended early at frame %d", i)
		}
	}
	w.Step(Input{}, frameDelta)
	if got := w.Camera().Shake; got != 0 {
		t.Errorf("Shake = %v, want exactly 0", got)
	}

	w.Step(Input{}, frameDelta)
	if got := w.Camera().Shake; got != 0 {
		t.Errorf("Shake = %v, should stay 0", got)
	}
}

func TestNegativeShakeIgnored(t *testing.T) {
	w := NewWorld(quietTuning(), 4)
	w.KillPlayer()
	w.Step(Input{}, frameDelta)
	w.camera.Shake = 0
	w.camera.Position = core.V(3, 3)

	w.TriggerShake(-5)
	w.Step(Input{}, frameDelta)

	if c := w.Camera(); c.Shake != 0 || c.Position != core.V(3, 3) {
		t.Errorf("camera = %+v, negative shake should be a no-op", c)
	}
}

func TestCameraFollowsAhead(t *testing.T) {
	w := NewWorld(quietTuning(), 4)
	p := mustPlayer(t, w)
	p.Velocity = core.V(100, 0)

	w.Step(Input{}, frameDelta)

	p = mustPlayer(t, w)
	c := w.Camera()
	if c.Position.X <= 0 {
		t.Errorf("camera should move toward the player, at %v", c.Position)
	}
	ahead := p.Position.X + w.tuning.LookaheadDistance/w.tuning.MaxSpeed*p.Velocity.X
	if c.Position.X >= ahead {
		t.Errorf("camera should ease, not jump: %v >= %v", c.Position.X, ahead)
	}
}

func TestCameraLerpFactorClamped(t *testing.T) {
	tuning := quietTuning()
	tuning.FollowSpeed = 50
	w := NewWorld(tuning, 4)
	p := mustPlayer(t, w)
	p.Velocity = core.V(0, 60)

	w.Step(Input{}, time.Second)

	p = mustPlayer(t, w)
	want := p.Position.Y + tuning.LookaheadDistance/tuning.MaxSpeed*p.Velocity.Y
	if got := w.Camera().Position.Y; !almostEqual(got, want, 1e-9) {
		t.Errorf("camera Y = %v, want the follow point %v", got, want)
	}
}

func TestDotsStayAroundCamera(t *testing.T) {
	w := NewWorld(quietTuning(), 4)
	w.camera.Position = core.V(1234, -987)

	w.Step(Input{}, frameDelta)

	c := w.Camera().Position
	tn := w.tuning
	for i, d := range w.Dots() {
		if d.X-c.X > tn.Width/2+1e-9 || d.X-c.X < -tn.Width/2-1e-9 {
			t.Fatalf("dot %d x=%v outside the view around %v", i, d.X, c.X)
		}
		if d.Y-c.Y > tn.Height/2+1e-9 || d.Y-c.Y < -tn.Height/2-1e-9 {
			t.Fatalf("dot %d y=%v outside the view around %v", i, d.Y, c.Y)
		}
	}
	if len(w.Dots()) != 32*18 {
		t.Errorf("len(Dots()) = %d, want %d", len(w.Dots()), 32*18)
	}
}
