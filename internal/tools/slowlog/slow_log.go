package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger measures named stages and writes their durations at debug level.
type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log           *zerolog.Logger
	now           func() time.Time
	ongoingTimers map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.ongoingTimers[name] = s.now()
	s.Unlock()
}

// Stop returns zero for a stage that was never started.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.ongoingTimers[name]
	if !ok {
		return 0
	}

	duration := s.now().Sub(start)

	s.log.Debug().
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	delete(s.ongoingTimers, name)

	return duration
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	return createLogger(log, time.Now)
}

func createLogger(log *zerolog.Logger, now func() time.Time) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:           &logger,
		now:           now,
		ongoingTimers: make(map[string]time.Time),
	}
}
