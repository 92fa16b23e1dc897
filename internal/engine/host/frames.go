package host

// FrameID identifies a pending animation-frame request. Zero is never issued.
type FrameID uint64

// FrameCallback receives the frame timestamp in milliseconds since the
// scheduler's time origin.
type FrameCallback func(timeMs float64)

type frameRequest struct {
	id FrameID
	cb FrameCallback
}

// FrameScheduler queues animation-frame callbacks and runs them once per Tick.
// Callbacks requested while a tick is running are deferred to the next tick,
// so a callback that reschedules itself runs exactly once per frame.
type FrameScheduler struct {
	nextID  FrameID
	pending []frameRequest
	running []frameRequest
	frame   uint64
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// RequestAnimationFrame queues cb for the next tick.
func (s *FrameScheduler) RequestAnimationFrame(cb FrameCallback) FrameID {
	s.nextID++
	s.pending = append(s.pending, frameRequest{id: s.nextID, cb: cb})
	return s.nextID
}

// CancelAnimationFrame drops a request. It also covers requests in the batch
// currently running that have not been reached yet. Unknown or already-run
// IDs are ignored.
func (s *FrameScheduler) CancelAnimationFrame(id FrameID) {
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
			return
		}
	}
	for i := range s.running {
		if s.running[i].id == id {
			s.running[i].cb = nil
			return
		}
	}
}

// Tick runs the callbacks that were pending when it was called, in request
// order, and returns how many ran.
func (s *FrameScheduler) Tick(timeMs float64) int {
	s.running = s.pending
	s.pending = nil
	s.frame++

	ran := 0
	for i := 0; i < len(s.running); i++ {
		cb := s.running[i].cb
		if cb == nil {
			continue
		}
		s.running[i].cb = nil
		cb(timeMs)
		ran++
	}
	s.running = nil
	return ran
}

// Pending returns the number of requests queued for the next tick.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Frame returns how many ticks have run.
func (s *FrameScheduler) Frame() uint64 {
	return s.frame
}
