package ordinal

import "github.com/prometheus/client_golang/prometheus"

const (
	resultLoaded     = "loaded"
	resultMissing    = "missing"
	resultError      = "error"
	resultResolved   = "resolved"
	resultUnresolved = "unresolved"
)

// Metrics counts ordinal table loads by result (loaded, missing, error) and
// ordinal lookups by result (resolved, unresolved).
type Metrics struct {
	TableLoads *prometheus.CounterVec
	Lookups    *prometheus.CounterVec
}

// NewMetrics creates the ordinal cache counters and registers them with reg
// when reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TableLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addrnames_ordinal_table_loads_total",
			Help: "Total number of attempts to read an ordinal table from storage",
		}, []string{"result"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addrnames_ordinal_lookups_total",
			Help: "Total number of ordinal to name lookups",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.TableLoads,
			m.Lookups,
		)
	}

	return m
}
