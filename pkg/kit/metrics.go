package kit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelCommand = "command"
	labelResult  = "result"

	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

type Metrics struct {
	Commands  *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	ItemsSold prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundraiser_commands_total",
				Help: "Commands interpreted, by command and result",
			},
			[]string{labelCommand, labelResult},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fundraiser_command_duration_seconds",
				Help:    "Command handling latency",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{labelCommand},
		),
		ItemsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundraiser_items_sold_total",
			Help: "Units sold across all accepted sales",
		}),
	}

	reg.MustRegister(m.Commands, m.Latency, m.ItemsSold)
	return m
}

// Observe records one handled command. A nil *Metrics is a no-op.
func (m *Metrics) Observe(command, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.Latency.WithLabelValues(command).Observe(d.Seconds())
	m.Commands.WithLabelValues(command, result).Inc()
}

func (m *Metrics) Sold(qty int) {
	if m == nil {
		return
	}
	m.ItemsSold.Add(float64(qty))
}

// WriteTextfile dumps everything g gathers to path in the text exposition
// format, replacing the file atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
