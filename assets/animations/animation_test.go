package animations

import "testing"

// tick is an exact binary fraction so accumulated time has no rounding.
const tick = 0.125

func run(a *Animation, ticks int) (frames []int, signals []Signal) {
	for i := 0; i < ticks; i++ {
		s := a.Update(tick)
		frames = append(frames, a.Frame())
		signals = append(signals, s)
	}
	return frames, signals
}

func count(signals []Signal, want Signal) int {
	n := 0
	for _, s := range signals {
		if s == want {
			n++
		}
	}
	return n
}

func TestAnimation_NonLoopingFinishesOnce(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
	}{
		{"two frames", 0, 1},
		{"offset range", 2, 5},
		{"long range", 0, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimation(tt.first, tt.last, 4)
			frames, signals := run(a, 200)

			prev := tt.first
			for i, f := range frames {
				if f < prev {
					t.Fatalf("tick %d: frame went backwards %d -> %d", i, prev, f)
				}
				if f < tt.first || f > tt.last {
					t.Fatalf("tick %d: frame %d outside [%d, %d]", i, f, tt.first, tt.last)
				}
				prev = f
			}
			if got := frames[len(frames)-1]; got != tt.last {
				t.Errorf("final frame = %d, want %d", got, tt.last)
			}
			if got := count(signals, SignalFinished); got != 1 {
				t.Errorf("Finished emitted %d times, want 1", got)
			}
			if got := count(signals, SignalLooped); got != 0 {
				t.Errorf("Looped emitted %d times, want 0", got)
			}
			if !a.Finished() {
				t.Error("Finished() = false after completion")
			}
		})
	}
}

func TestAnimation_NoFinishBeforeLastFrameShown(t *testing.T) {
	a := NewAnimation(0, 2, 4)
	frames, signals := run(a, 20)

	for i, s := range signals {
		if s == SignalFinished && frames[i] != 2 {
			t.Fatalf("Finished at frame %d, want 2", frames[i])
		}
		if s == SignalFinished && i > 0 && signals[i-1] == SignalAdvanced {
			t.Fatalf("Finished on the tick right after reaching the last frame")
		}
	}
}

func TestSetFrame_FinishesExactlyOnce(t *testing.T) {
	for _, index := range []int{0, 1, 7} {
		a := SetFrame(index)
		frames, signals := run(a, 50)

		if got := count(signals, SignalFinished); got != 1 {
			t.Errorf("SetFrame(%d): Finished emitted %d times, want 1", index, got)
		}
		if signals[0] != SignalFinished {
			t.Errorf("SetFrame(%d): first signal = %v, want finished", index, signals[0])
		}
		for i, f := range frames {
			if f != index {
				t.Fatalf("SetFrame(%d): tick %d frame = %d", index, i, f)
			}
		}
	}
}

func TestSetFrame_IgnoresLooping(t *testing.T) {
	a := SetFrame(1).WithLooping()
	_, signals := run(a, 50)
	if got := count(signals, SignalFinished); got != 1 {
		t.Errorf("Finished emitted %d times, want 1", got)
	}
}

func TestAnimation_LoopingNeverFinishes(t *testing.T) {
	a := NewAnimation(0, 2, 4).WithLooping()
	frames, signals := run(a, 400)

	if got := count(signals, SignalFinished); got != 0 {
		t.Fatalf("looping animation emitted Finished %d times", got)
	}
	if got := count(signals, SignalLooped); got == 0 {
		t.Fatal("looping animation never wrapped")
	}

	// Every step moves to the next frame modulo the range.
	prev := 0
	for i, s := range signals {
		if s == SignalNone {
			continue
		}
		want := (prev + 1) % 3
		if frames[i] != want {
			t.Fatalf("tick %d: frame %d, want %d", i, frames[i], want)
		}
		prev = frames[i]
	}
}

func TestAnimation_Delay(t *testing.T) {
	a := NewAnimation(0, 3, 4).WithDelay(0.5)

	for i := 0; i < 3; i++ {
		if s := a.Update(tick); s != SignalNone {
			t.Fatalf("tick %d during delay: signal %v", i, s)
		}
	}
	if a.Frame() != 0 {
		t.Fatalf("frame moved during delay: %d", a.Frame())
	}

	_, signals := run(a, 10)
	if count(signals, SignalAdvanced) == 0 {
		t.Error("animation never advanced after the delay elapsed")
	}
}

func TestAnimation_PauseAndPlay(t *testing.T) {
	a := NewAnimation(0, 3, 4).WithPaused()

	_, signals := run(a, 20)
	if count(signals, SignalNone) != len(signals) {
		t.Fatal("paused animation advanced")
	}
	if a.Frame() != 0 {
		t.Fatalf("paused frame = %d, want 0", a.Frame())
	}

	a.Play()
	_, signals = run(a, 4)
	if count(signals, SignalAdvanced) == 0 {
		t.Error("animation did not advance after Play")
	}

	a.Pause()
	f := a.Frame()
	run(a, 10)
	if a.Frame() != f {
		t.Errorf("frame moved while paused: %d -> %d", f, a.Frame())
	}
}

func TestAnimation_ChangeFPSKeepsElapsed(t *testing.T) {
	a := NewAnimation(0, 3, 4)
	a.Update(tick) // elapsed 0.125 of 0.25

	a.ChangeFPS(8) // interval now 0.125
	if s := a.Update(0); s != SignalAdvanced {
		t.Fatalf("signal = %v, want advanced from carried-over time", s)
	}
}

func TestAnimation_RestartRewinds(t *testing.T) {
	a := NewAnimation(1, 2, 4)
	run(a, 50)
	if !a.Finished() {
		t.Fatal("setup: animation should have finished")
	}

	a.Restart()
	if a.Finished() || a.Frame() != 1 {
		t.Fatalf("after Restart: finished=%v frame=%d", a.Finished(), a.Frame())
	}
	_, signals := run(a, 50)
	if got := count(signals, SignalFinished); got != 1 {
		t.Errorf("Finished emitted %d times after restart, want 1", got)
	}
}

func TestAnimation_RestartWaitsDelayAgain(t *testing.T) {
	a := NewAnimation(0, 3, 4).WithDelay(0.5).WithLooping()
	run(a, 20)

	a.Restart()
	_, signals := run(a, 3)
	if count(signals, SignalNone) != len(signals) {
		t.Errorf("restarted animation skipped its delay: %v", signals)
	}
	if a.Delay != 0.5 {
		t.Errorf("Delay = %v after playing, want 0.5", a.Delay)
	}
	_, signals = run(a, 10)
	if count(signals, SignalAdvanced) == 0 {
		t.Error("restarted animation never advanced")
	}
}

func TestNewAnimation_InvalidRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewAnimation(3, 1, 4) did not panic")
		}
	}()
	NewAnimation(3, 1, 4)
}
