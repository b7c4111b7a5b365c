package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/kstaniek/ncodec/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counters
var (
	FramesEncoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "can_frames_encoded_total",
		Help: "Total CAN frames staged via Write.",
	})
	FramesDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "can_frames_decoded_total",
		Help: "Total CAN frames delivered by Read (after self-reception filtering).",
	})
	FramesFiltered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "can_frames_filtered_total",
		Help: "Total CAN frames dropped by the Node_id self-reception filter.",
	})
	PdusEncoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdu_messages_encoded_total",
		Help: "Total PDUs staged via Write.",
	})
	PdusDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdu_messages_decoded_total",
		Help: "Total PDUs delivered by Read (after self-reception filtering).",
	})
	PdusFiltered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdu_messages_filtered_total",
		Help: "Total PDUs dropped by the swc_id self-reception filter.",
	})
	MalformedBuffers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "malformed_buffers_total",
		Help: "Total Read calls rejected due to a truncated or invalid wire buffer.",
	})
	ConfigErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "config_errors_total",
		Help: "Total MIME configuration strings rejected by mimetype.Decode.",
	})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build metadata (value is always 1).",
	}, []string{"version", "commit", "date"})
	readinessMu sync.RWMutex
	readinessFn func() bool
)

// StartHTTP serves Prometheus metrics at /metrics on a fresh mux.
func StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready\n"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		logging.L().Info("metrics_listen", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Error("metrics_http_error", "error", err)
		}
	}()
	return srv
}

// Local mirrored counters, cheap to read without scraping Prometheus.
var (
	localFramesEncoded  uint64
	localFramesDecoded  uint64
	localFramesFiltered uint64
	localPdusEncoded    uint64
	localPdusDecoded    uint64
	localPdusFiltered   uint64
	localMalformedBufs  uint64
	localConfigErrors   uint64
)

// Snapshot is a cheap copy of local counters.
type Snapshot struct {
	FramesEncoded    uint64
	FramesDecoded    uint64
	FramesFiltered   uint64
	PdusEncoded      uint64
	PdusDecoded      uint64
	PdusFiltered     uint64
	MalformedBuffers uint64
	ConfigErrors     uint64
}

func Snap() Snapshot {
	return Snapshot{
		FramesEncoded:    atomic.LoadUint64(&localFramesEncoded),
		FramesDecoded:    atomic.LoadUint64(&localFramesDecoded),
		FramesFiltered:   atomic.LoadUint64(&localFramesFiltered),
		PdusEncoded:      atomic.LoadUint64(&localPdusEncoded),
		PdusDecoded:      atomic.LoadUint64(&localPdusDecoded),
		PdusFiltered:     atomic.LoadUint64(&localPdusFiltered),
		MalformedBuffers: atomic.LoadUint64(&localMalformedBufs),
		ConfigErrors:     atomic.LoadUint64(&localConfigErrors),
	}
}

func IncFramesEncoded() {
	FramesEncoded.Inc()
	atomic.AddUint64(&localFramesEncoded, 1)
}

func IncFramesDecoded() {
	FramesDecoded.Inc()
	atomic.AddUint64(&localFramesDecoded, 1)
}

func IncFramesFiltered() {
	FramesFiltered.Inc()
	atomic.AddUint64(&localFramesFiltered, 1)
}

func IncPdusEncoded() {
	PdusEncoded.Inc()
	atomic.AddUint64(&localPdusEncoded, 1)
}

func IncPdusDecoded() {
	PdusDecoded.Inc()
	atomic.AddUint64(&localPdusDecoded, 1)
}

func IncPdusFiltered() {
	PdusFiltered.Inc()
	atomic.AddUint64(&localPdusFiltered, 1)
}

func IncMalformedBuffers() {
	MalformedBuffers.Inc()
	atomic.AddUint64(&localMalformedBufs, 1)
}

func IncConfigErrors() {
	ConfigErrors.Inc()
	atomic.AddUint64(&localConfigErrors, 1)
}

// InitBuildInfo sets the build info gauge (should be called once at startup).
func InitBuildInfo(version, commit, date string) {
	BuildInfo.WithLabelValues(version, commit, date).Set(1)
}

// SetReadinessFunc registers a function used by /ready and IsReady.
func SetReadinessFunc(fn func() bool) { readinessMu.Lock(); readinessFn = fn; readinessMu.Unlock() }

// IsReady invokes the registered readiness function if present.
func IsReady() bool {
	readinessMu.RLock()
	fn := readinessFn
	readinessMu.RUnlock()
	if fn == nil { // if not set yet, treat as ready so metrics endpoint doesn't flap
		return true
	}
	return fn()
}

// Ready is a concise alias used at call sites.
func Ready() bool { return IsReady() }
