package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urmzd/smarthome/pkg/device"
)

// Outcome label values
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// DeviceOperations counts operations dispatched to devices.
	DeviceOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smarthome_device_operations_total",
			Help: "Device operations by device, operation and outcome",
		},
		[]string{"device", "operation", "outcome"},
	)

	// HTTPRequests counts API requests.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smarthome_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(DeviceOperations, HTTPRequests)
}

// RecordOperation counts one device operation. Validation failures count
// as rejections, any other error as an error.
func RecordOperation(deviceName, operation string, ok bool, err error) {
	outcome := OutcomeOK
	switch {
	case err != nil && !errors.Is(err, device.ErrValidation):
		outcome = OutcomeError
	case !ok:
		outcome = OutcomeRejected
	}
	DeviceOperations.WithLabelValues(deviceName, operation, outcome).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
