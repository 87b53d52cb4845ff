// monitor/monitor.go
package monitor

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wfunc/partymediator/action"
	"github.com/wfunc/partymediator/party"
)

type Metrics struct {
	MembersJoined    *prometheus.CounterVec
	ActionsPerformed *prometheus.CounterVec
	Notifications    *prometheus.CounterVec
	ActiveParties    prometheus.Gauge
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MembersJoined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "members_joined_total",
			Help:      "Number of members that joined a party",
		}, []string{"member"}),
		ActionsPerformed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_broadcast_total",
			Help:      "Number of actions relayed by a party",
		}, []string{"member", "action"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Number of party actions delivered to members",
		}, []string{"action"}),
		ActiveParties: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_parties",
			Help:      "Number of parties held by the manager",
		}),
	}

	reg.MustRegister(
		m.MembersJoined,
		m.ActionsPerformed,
		m.Notifications,
		m.ActiveParties,
	)

	return m
}

// Monitor implements party.Observer on top of a private registry, so any
// number of monitors can coexist in one process.
type Monitor struct {
	metrics    *Metrics
	registry   *prometheus.Registry
	startTime  time.Time
	broadcasts int64
	mutex      sync.Mutex
}

var _ party.Observer = (*Monitor)(nil)

func NewMonitor(namespace string) *Monitor {
	reg := prometheus.NewRegistry()
	return &Monitor{
		metrics:   NewMetrics(namespace, reg),
		registry:  reg,
		startTime: time.Now(),
	}
}

func (m *Monitor) Metrics() *Metrics {
	return m.metrics
}

func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Monitor) MemberJoined(partyID string, member party.Member) {
	m.metrics.MembersJoined.WithLabelValues(member.String()).Inc()
}

func (m *Monitor) ActionBroadcast(partyID string, actor party.Member, a action.Action, notified int) {
	m.metrics.ActionsPerformed.WithLabelValues(actor.String(), a.Name()).Inc()
	m.metrics.Notifications.WithLabelValues(a.Name()).Add(float64(notified))

	m.mutex.Lock()
	m.broadcasts++
	m.mutex.Unlock()
}

func (m *Monitor) PartiesActive(count int) {
	m.metrics.ActiveParties.Set(float64(count))
}

// Summary 汇总运行期间的关键指标
type Summary struct {
	Uptime     time.Duration
	Broadcasts int64
	Families   int
}

func (m *Monitor) Summary() (Summary, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return Summary{}, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	return Summary{
		Uptime:     time.Since(m.startTime),
		Broadcasts: m.broadcasts,
		Families:   len(families),
	}, nil
}
