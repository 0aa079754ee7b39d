package sink

import (
	"context"
	"file-exchange/domain"
	"file-exchange/domain/event"
	"file-exchange/observability"
)

type MetricsSink struct {
	metrics *observability.Metrics
}

func NewMetricsSink(metrics *observability.Metrics) *MetricsSink {
	return &MetricsSink{metrics: metrics}
}

func (m *MetricsSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.UploadStored:
		m.metrics.Uploads.WithLabelValues(domain.OutcomeSuccess.String()).Inc()
		m.metrics.UploadedBytes.Add(float64(evt.Size))
	case event.UploadRejected:
		m.metrics.Uploads.WithLabelValues(evt.Outcome.String()).Inc()
	case event.FileDownloaded:
		m.metrics.Downloads.Inc()
		m.metrics.DownloadedBytes.Add(float64(evt.Size))
	}
	return nil
}
