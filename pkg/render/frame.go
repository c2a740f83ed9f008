package render

// FrameState is the only state that changes while rendering: the cube's
// rotation and the frame rate bookkeeping. Times are in seconds.
type FrameState struct {
	Rotation float64 // radians about +Y

	prevTime    float64
	windowStart float64
	frameCount  uint32
}

// NewFrameState returns a state whose clocks start at now.
func NewFrameState(now float64) *FrameState {
	s := &FrameState{}
	s.Reset(now)
	return s
}

// Reset zeroes the rotation and restarts both clocks at now.
func (s *FrameState) Reset(now float64) {
	s.Rotation = 0
	s.prevTime = now
	s.windowStart = now
	s.frameCount = 0
}

// Advance records a rendered frame finishing at now. The rotation advances by
// AngularVelocity times the time since the previous frame. Once at least
// FPSReportInterval has passed since the window start it returns the achieved
// frame rate and true, and starts a new window.
func (s *FrameState) Advance(now float64) (fps float64, report bool) {
	s.frameCount++
	s.Rotation += AngularVelocity * (now - s.prevTime)
	s.prevTime = now

	elapsed := now - s.windowStart
	if elapsed < FPSReportInterval {
		return 0, false
	}

	fps = float64(s.frameCount) / elapsed
	s.windowStart = now
	s.frameCount = 0
	return fps, true
}

// FrameCount returns the frames counted in the current window.
func (s *FrameState) FrameCount() uint32 {
	return s.frameCount
}

// WindowStart returns when the current counting window began.
func (s *FrameState) WindowStart() float64 {
	return s.windowStart
}
