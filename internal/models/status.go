package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ScopeKind string

const (
	ScopeGlobal ScopeKind = "global"
	ScopeServer ScopeKind = "server"
	ScopeClient ScopeKind = "client"
)

// Scope selects what the status endpoint is asked about.
type Scope struct {
	Kind   ScopeKind `json:"kind" yaml:"kind"`
	Server string    `json:"server,omitempty" yaml:"server"`
	Client string    `json:"client,omitempty" yaml:"client"`
}

func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeGlobal, "":
		return nil
	case ScopeServer:
		if s.Server == "" {
			return fmt.Errorf("server scope requires a server name")
		}
		return nil
	case ScopeClient:
		if s.Client == "" {
			return fmt.Errorf("client scope requires a client name")
		}
		return nil
	default:
		return fmt.Errorf("unknown scope kind %q", s.Kind)
	}
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeServer:
		return "server:" + s.Server
	case ScopeClient:
		if s.Server != "" {
			return "client:" + s.Server + "/" + s.Client
		}
		return "client:" + s.Client
	default:
		return "global"
	}
}

// RunningState is one observation of the status endpoint. Percent is only
// meaningful while Running is true.
type RunningState struct {
	Running bool     `json:"running"`
	Phase   string   `json:"phase,omitempty"`
	Percent int      `json:"percent,omitempty"`
	Clients []string `json:"clients,omitempty"`
}

// SameAs compares the (running, phase, percent) tuple. The client list is
// informational and does not count as a transition.
func (r RunningState) SameAs(other RunningState) bool {
	if r.Running != other.Running || r.Phase != other.Phase {
		return false
	}
	if r.Running && r.Percent != other.Percent {
		return false
	}
	return true
}

type Cadence string

const (
	CadenceStopped Cadence = "stopped"
	CadenceIdle    Cadence = "idle"
	CadenceFast    Cadence = "fast"
	CadenceReport  Cadence = "report"
)

// StatusSnapshot is what the poller exposes to readers.
type StatusSnapshot struct {
	Scope    Scope         `json:"scope"`
	State    RunningState  `json:"state"`
	Observed bool          `json:"observed"`
	Cadence  Cadence       `json:"cadence"`
	Interval time.Duration `json:"interval_ns"`
	LastPoll *time.Time    `json:"last_poll,omitempty"`
	Sequence uint64        `json:"sequence"`
}

// StatusEvent is a persisted transition.
type StatusEvent struct {
	ID         int64      `json:"id" db:"id"`
	Scope      string     `json:"scope" db:"scope"`
	Running    bool       `json:"running" db:"running"`
	Phase      string     `json:"phase,omitempty" db:"phase"`
	Percent    int        `json:"percent" db:"percent"`
	Clients    ClientList `json:"clients,omitempty" db:"clients"`
	ObservedAt time.Time  `json:"observed_at" db:"observed_at"`
}

func NewStatusEvent(scope Scope, state RunningState, at time.Time) *StatusEvent {
	return &StatusEvent{
		Scope:      scope.String(),
		Running:    state.Running,
		Phase:      state.Phase,
		Percent:    state.Percent,
		Clients:    ClientList(state.Clients),
		ObservedAt: at,
	}
}

type StatusEventFilter struct {
	Scope string     `json:"scope,omitempty"`
	Limit int        `json:"limit,omitempty"`
	Since *time.Time `json:"since,omitempty"`
}

// ClientList is stored as a JSON array.
type ClientList []string

func (c ClientList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ClientList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ClientList", value)
	}

	var clients []string
	if err := json.Unmarshal(bytes, &clients); err != nil {
		return err
	}
	if len(clients) == 0 {
		clients = nil
	}
	*c = clients
	return nil
}
