package observability

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/disk"
)

const namespace = "file_exchange"

// Metrics groups the service collectors on a dedicated registry so tests
// can build as many instances as they need.
type Metrics struct {
	registry        *prometheus.Registry
	Uploads         *prometheus.CounterVec
	UploadedBytes   prometheus.Counter
	Downloads       prometheus.Counter
	DownloadedBytes prometheus.Counter
}

func NewMetrics(log *slog.Logger, storageRoot string) *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "total",
			Help:      "Upload attempts by outcome",
		}, []string{"outcome"}),
		UploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "bytes_total",
			Help:      "Bytes persisted by successful uploads",
		}),
		Downloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "downloads",
			Name:      "total",
			Help:      "Files served for download",
		}),
		DownloadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "downloads",
			Name:      "bytes_total",
			Help:      "Size of the files served for download",
		}),
	}

	registry.MustRegister(m.Uploads, m.UploadedBytes, m.Downloads, m.DownloadedBytes)
	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "free_bytes",
		Help:      "Free space on the volume holding the storage root",
	}, func() float64 {
		usage, err := StorageUsage(storageRoot)
		if err != nil {
			log.Debug("Storage usage unavailable", "path", storageRoot, "error", err)
			return 0
		}
		return float64(usage.Free)
	}))
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Usage is the capacity of the volume holding a directory.
type Usage struct {
	Path        string
	Total       uint64
	Free        uint64
	UsedPercent float64
}

func StorageUsage(path string) (Usage, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		Path:        stat.Path,
		Total:       stat.Total,
		Free:        stat.Free,
		UsedPercent: stat.UsedPercent,
	}, nil
}
