package metrics

import (
	"io"
	"net"
	"time"

	graphite "github.com/cyberdelia/go-metrics-graphite"
	gometrics "github.com/rcrowley/go-metrics"
)

// Recorder keeps request metrics in a registry private to one server.
type Recorder struct {
	registry gometrics.Registry
}

func NewRecorder() *Recorder {
	return &Recorder{registry: gometrics.NewRegistry()}
}

// ObserveSchedule counts one request for name and records its latency when it succeeded.
func (r *Recorder) ObserveSchedule(name string, started time.Time, err error) {
	gometrics.GetOrRegisterCounter("schedule."+name+".requests", r.registry).Inc(1)
	if err != nil {
		gometrics.GetOrRegisterCounter("schedule."+name+".errors", r.registry).Inc(1)
		return
	}
	gometrics.GetOrRegisterTimer("schedule."+name+".latency", r.registry).UpdateSince(started)
}

func (r *Recorder) CacheHit() {
	gometrics.GetOrRegisterCounter("cache.hits", r.registry).Inc(1)
}

func (r *Recorder) CacheMiss() {
	gometrics.GetOrRegisterCounter("cache.misses", r.registry).Inc(1)
}

// Count returns the value of a counter, or 0 if it was never registered.
func (r *Recorder) Count(name string) int64 {
	if counter, ok := r.registry.Get(name).(gometrics.Counter); ok {
		return counter.Count()
	}
	return 0
}

func (r *Recorder) WriteJSON(w io.Writer) {
	gometrics.WriteJSONOnce(r.registry, w)
}

// ExportGraphite flushes the registry to host every interval. It returns once
// the address is resolved; flushing continues in the background.
func (r *Recorder) ExportGraphite(host, prefix string, interval time.Duration) error {
	addr, err := net.ResolveTCPAddr("tcp", host)
	if err != nil {
		return err
	}
	go graphite.Graphite(r.registry, interval, prefix, addr)
	return nil
}
