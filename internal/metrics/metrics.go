package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	MessagesSent         prometheus.Counter
	MessageEdits         prometheus.Counter
	MessagesDeleted      prometheus.Counter
	MessagesRead         prometheus.Counter
	NotificationsCreated *prometheus.CounterVec
	NotificationsRead    prometheus.Counter
	AccountDeletions     prometheus.Counter
	CascadeRowsDeleted   *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the service collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MessagesSent: f.NewCounter(prometheus.CounterOpts{
			Name: "messaging_messages_sent_total",
			Help: "Messages created, replies included.",
		}),
		MessageEdits: f.NewCounter(prometheus.CounterOpts{
			Name: "messaging_message_edits_total",
			Help: "Edits that changed content and wrote a history row.",
		}),
		MessagesDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "messaging_messages_deleted_total",
			Help: "Messages removed by their sender, reply subtrees included.",
		}),
		MessagesRead: f.NewCounter(prometheus.CounterOpts{
			Name: "messaging_messages_read_total",
			Help: "Messages flipped from unread to read.",
		}),
		NotificationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "messaging_notifications_created_total",
			Help: "Notification rows created.",
		}, []string{"type"}),
		NotificationsRead: f.NewCounter(prometheus.CounterOpts{
			Name: "messaging_notifications_read_total",
			Help: "Notification rows flipped to read.",
		}),
		AccountDeletions: f.NewCounter(prometheus.CounterOpts{
			Name: "messaging_account_deletions_total",
			Help: "Completed account deletion cascades.",
		}),
		CascadeRowsDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "messaging_cascade_rows_deleted_total",
			Help: "Rows removed or detached by account deletion, by entity.",
		}, []string{"entity"}),
		gatherer: reg,
	}
}

// NewDefault registers on a fresh registry that also carries the go and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return New(reg)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
