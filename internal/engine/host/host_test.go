package host

import "testing"

func TestEventTargetDispatch(t *testing.T) {
	target := NewEventTarget()

	var calls []string
	target.AddEventListener(EventResize, func() { calls = append(calls, "a") })
	target.AddEventListener(EventResize, func() { calls = append(calls, "b") })
	target.AddEventListener("other", func() { calls = append(calls, "other") })

	if n := target.Dispatch(EventResize); n != 2 {
		t.Errorf("expected 2 listeners invoked, got %d", n)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("unexpected call order: %v", calls)
	}
}

func TestEventTargetRemove(t *testing.T) {
	target := NewEventTarget()

	count := 0
	id := target.AddEventListener(EventResize, func() { count++ })
	target.Dispatch(EventResize)

	target.RemoveEventListener(EventResize, id)
	target.Dispatch(EventResize)

	if count != 1 {
		t.Errorf("expected listener to run once, ran %d times", count)
	}
	if target.ListenerCount(EventResize) != 0 {
		t.Errorf("expected no listeners, got %d", target.ListenerCount(EventResize))
	}
	if len(target.EventTypes()) != 0 {
		t.Errorf("expected no event types, got %v", target.EventTypes())
	}

	// Removing twice or with an unknown ID is harmless
	target.RemoveEventListener(EventResize, id)
	target.RemoveEventListener("missing", 42)
}

func TestEventTargetRemoveDuringDispatch(t *testing.T) {
	target := NewEventTarget()

	var second ListenerID
	secondCalls := 0
	target.AddEventListener(EventResize, func() {
		target.RemoveEventListener(EventResize, second)
	})
	second = target.AddEventListener(EventResize, func() { secondCalls++ })

	// Snapshot semantics: second still runs in the dispatch that removed it
	target.Dispatch(EventResize)
	target.Dispatch(EventResize)

	if secondCalls != 1 {
		t.Errorf("expected second listener to run once, ran %d times", secondCalls)
	}
}

func TestFrameSchedulerDefersRequestsMadeDuringTick(t *testing.T) {
	s := NewFrameScheduler()

	runs := 0
	var loop FrameCallback
	loop = func(float64) {
		runs++
		s.RequestAnimationFrame(loop)
	}
	s.RequestAnimationFrame(loop)

	for i := 1; i <= 5; i++ {
		if ran := s.Tick(float64(i) * 16); ran != 1 {
			t.Fatalf("tick %d: expected 1 callback, got %d", i, ran)
		}
		if s.Pending() != 1 {
			t.Fatalf("tick %d: expected 1 pending request, got %d", i, s.Pending())
		}
	}
	if runs != 5 {
		t.Errorf("expected 5 runs, got %d", runs)
	}
	if s.Frame() != 5 {
		t.Errorf("expected frame 5, got %d", s.Frame())
	}
}

func TestFrameSchedulerPassesTimestamp(t *testing.T) {
	s := NewFrameScheduler()

	var got float64
	s.RequestAnimationFrame(func(ts float64) { got = ts })
	s.Tick(1234.5)

	if got != 1234.5 {
		t.Errorf("expected timestamp 1234.5, got %f", got)
	}
	if s.Tick(2000) != 0 {
		t.Error("expected empty tick after callback consumed")
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *FrameScheduler) int
		want int
	}{
		{
			name: "cancel before tick",
			run: func(s *FrameScheduler) int {
				calls := 0
				id := s.RequestAnimationFrame(func(float64) { calls++ })
				s.CancelAnimationFrame(id)
				s.Tick(0)
				return calls
			},
			want: 0,
		},
		{
			name: "cancel later request in same batch",
			run: func(s *FrameScheduler) int {
				calls := 0
				var later FrameID
				s.RequestAnimationFrame(func(float64) { s.CancelAnimationFrame(later) })
				later = s.RequestAnimationFrame(func(float64) { calls++ })
				s.Tick(0)
				return calls
			},
			want: 0,
		},
		{
			name: "cancel unknown id",
			run: func(s *FrameScheduler) int {
				calls := 0
				s.RequestAnimationFrame(func(float64) { calls++ })
				s.CancelAnimationFrame(999)
				s.Tick(0)
				return calls
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(NewFrameScheduler()); got != tt.want {
				t.Errorf("expected %d calls, got %d", tt.want, got)
			}
		})
	}
}

func TestStaticCanvas(t *testing.T) {
	c := &StaticCanvas{Width: 640, Height: 480}
	w, h := c.ClientSize()
	if w != 640 || h != 480 {
		t.Errorf("expected 640x480, got %dx%d", w, h)
	}
	if c.PixelRatio() != 1 {
		t.Errorf("expected default pixel ratio 1, got %f", c.PixelRatio())
	}
}
