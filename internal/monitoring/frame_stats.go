// Package monitoring keeps frame and level build timings for the HUD.
package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// smoothing is the weight of the newest sample in the running frame average
const smoothing = 0.1

// FrameStats tracks draw timings and level build timings
type FrameStats struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame
	buildCount atomic.Uint64
	buildTime  atomic.Uint64 // nanoseconds, last build

	mutex        sync.RWMutex
	avgFrameTime float64
	startTime    time.Time

	lowFPS float64
}

// NewFrameStats creates an empty tracker. lowFPS is the rate below which
// Alerts reports a slow frame; zero disables the check.
func NewFrameStats(lowFPS float64) *FrameStats {
	return &FrameStats{
		startTime: time.Now(),
		lowFPS:    lowFPS,
	}
}

// FrameTimer measures one frame
type FrameTimer struct {
	stats     *FrameStats
	startTime time.Time
}

func (fs *FrameStats) StartFrame() *FrameTimer {
	return &FrameTimer{stats: fs, startTime: time.Now()}
}

// EndFrame records the frame started by StartFrame
func (ft *FrameTimer) EndFrame() {
	ft.stats.RecordFrame(time.Since(ft.startTime))
}

// RecordFrame adds one frame of duration d
func (fs *FrameStats) RecordFrame(d time.Duration) {
	fs.frameTime.Store(uint64(d.Nanoseconds()))
	n := fs.frameCount.Add(1)

	fs.mutex.Lock()
	if n == 1 {
		fs.avgFrameTime = float64(d.Nanoseconds())
	} else {
		fs.avgFrameTime += smoothing * (float64(d.Nanoseconds()) - fs.avgFrameTime)
	}
	fs.mutex.Unlock()
}

// TimeBuild runs build and records how long it took
func (fs *FrameStats) TimeBuild(build func()) time.Duration {
	start := time.Now()
	build()
	d := time.Since(start)
	fs.buildTime.Store(uint64(d.Nanoseconds()))
	fs.buildCount.Add(1)
	return d
}

// Snapshot is a copy of the current timings
type Snapshot struct {
	Frames       uint64
	LastFrame    time.Duration
	AverageFrame time.Duration
	Builds       uint64
	LastBuild    time.Duration
	Uptime       time.Duration
}

// FramesPerSecond derived from the average frame time; zero before any frame
func (s Snapshot) FramesPerSecond() float64 {
	if s.AverageFrame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.AverageFrame)
}

func (fs *FrameStats) Snapshot() Snapshot {
	fs.mutex.RLock()
	avg := fs.avgFrameTime
	start := fs.startTime
	fs.mutex.RUnlock()

	return Snapshot{
		Frames:       fs.frameCount.Load(),
		LastFrame:    time.Duration(fs.frameTime.Load()),
		AverageFrame: time.Duration(avg),
		Builds:       fs.buildCount.Load(),
		LastBuild:    time.Duration(fs.buildTime.Load()),
		Uptime:       time.Since(start),
	}
}

// Alert is a timing warning
type Alert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// Alerts returns the current timing warnings
func (fs *FrameStats) Alerts() []Alert {
	var alerts []Alert
	if fs.lowFPS <= 0 {
		return alerts
	}
	if fps := fs.Snapshot().FramesPerSecond(); fps > 0 && fps < fs.lowFPS {
		alerts = append(alerts, Alert{
			Type:      "low_fps",
			Message:   "Draw rate is below the configured minimum",
			Value:     fps,
			Threshold: fs.lowFPS,
		})
	}
	return alerts
}
