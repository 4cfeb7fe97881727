package sink

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/m-ocean-it/go-tinyprint/printer"
)

// Metered wraps a Sink and counts offered, accepted and dropped bytes.
type Metered struct {
	next printer.Sink

	writes   prometheus.Counter
	accepted prometheus.Counter
	dropped  prometheus.Counter
}

// NewMetered registers the sink metrics under namespace with reg and returns
// a Sink forwarding to next.
func NewMetered(next printer.Sink, reg prometheus.Registerer, namespace string) *Metered {
	factory := promauto.With(reg)

	bytes := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sink",
			Name:      "bytes_total",
			Help:      "Bytes offered to the sink",
		},
		[]string{"result"}, // accepted/dropped
	)

	return &Metered{
		next: next,
		writes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "writes_total",
				Help:      "Write calls made to the sink",
			},
		),
		accepted: bytes.WithLabelValues("accepted"),
		dropped:  bytes.WithLabelValues("dropped"),
	}
}

func (m *Metered) PutByte(b byte) int {
	n := m.next.PutByte(b)
	m.record(1, n)
	return n
}

func (m *Metered) Put(p []byte) int {
	n := m.next.Put(p)
	m.record(len(p), n)
	return n
}

func (m *Metered) record(offered, accepted int) {
	m.writes.Inc()
	m.accepted.Add(float64(accepted))
	if accepted < offered {
		m.dropped.Add(float64(offered - accepted))
	}
}
