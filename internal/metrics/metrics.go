package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "inventory"

// Metrics holds the counters of one process on a private registry.
// It implements the observers of the search engine and the editors.
type Metrics struct {
	Registry *prometheus.Registry

	SearchesTotal   *prometheus.CounterVec
	RejectionsTotal *prometheus.CounterVec
	Records         *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Searches by collection, queried field and outcome",
			},
			[]string{"collection", "field", "found"},
		),
		RejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "save_rejections_total",
				Help:      "Saves turned down by a validation check",
			},
			[]string{"collection", "signal"},
		),
		Records: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_records",
				Help:      "Records currently listed in the catalog",
			},
			[]string{"collection"},
		),
	}
	m.Registry.MustRegister(m.SearchesTotal, m.RejectionsTotal, m.Records)
	return m
}

func (m *Metrics) ObserveSearch(collection string, field string, found bool) {
	m.SearchesTotal.WithLabelValues(collection, field, strconv.FormatBool(found)).Inc()
}

func (m *Metrics) ObserveRejection(collection string, signal string) {
	m.RejectionsTotal.WithLabelValues(collection, signal).Inc()
}

// ObserveCatalog records the current size of both collections.
func (m *Metrics) ObserveCatalog(items, products int) {
	m.Records.WithLabelValues("items").Set(float64(items))
	m.Records.WithLabelValues("products").Set(float64(products))
}

// Dump writes every metric in the Prometheus text format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
