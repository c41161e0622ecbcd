package burpui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"burpwatch/internal/models"
)

// ErrUnexpectedShape is returned when a payload matches none of the known
// burp-ui response layouts.
var ErrUnexpectedShape = errors.New("unexpected response shape")

var runningStates = map[string]bool{
	"running":  true,
	"backup":   true,
	"restore":  true,
	"started":  true,
	"scanning": true,
}

// ParseRunningState normalizes every layout the status endpoints produce:
//
//	{"running": true}
//	{"running": ["client1"]}
//	{"running": {"agent1": ["client1"]}}
//	{"results": ...}
//	["client1", "client2"]
//	{"state": "running", "phase": "...", "percent": 42}
func ParseRunningState(data []byte) (models.RunningState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return models.RunningState{}, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		clients, err := decodeClients(trimmed)
		if err != nil {
			return models.RunningState{}, err
		}
		return models.RunningState{Running: len(clients) > 0, Clients: clients}, nil
	case 't', 'f':
		var running bool
		if err := json.Unmarshal(trimmed, &running); err != nil {
			return models.RunningState{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		return models.RunningState{Running: running}, nil
	case '{':
	default:
		return models.RunningState{}, fmt.Errorf("%w: %.40s", ErrUnexpectedShape, trimmed)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return models.RunningState{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	if results, ok := obj["results"]; ok {
		return ParseRunningState(results)
	}

	var state models.RunningState
	known := false

	if raw, ok := obj["running"]; ok {
		known = true
		running, clients, err := decodeRunningField(raw)
		if err != nil {
			return models.RunningState{}, err
		}
		state.Running = running
		state.Clients = clients
	}

	if raw, ok := obj["state"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			known = true
			if _, hasRunning := obj["running"]; !hasRunning {
				state.Running = runningStates[strings.ToLower(s)]
			}
		}
	}

	if raw, ok := obj["phase"]; ok {
		var phase string
		if err := json.Unmarshal(raw, &phase); err == nil {
			known = true
			state.Phase = phase
		}
	}

	if raw, ok := obj["percent"]; ok {
		pct, err := decodePercent(raw)
		if err != nil {
			return models.RunningState{}, err
		}
		known = true
		state.Percent = pct
	}

	if !known {
		return models.RunningState{}, fmt.Errorf("%w: no running, state or results field", ErrUnexpectedShape)
	}

	if !state.Running {
		state.Percent = 0
	}
	return state, nil
}

func decodeRunningField(raw json.RawMessage) (bool, []string, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil, nil
	}

	if clients, err := decodeClients(raw); err == nil {
		return len(clients) > 0, clients, nil
	}

	// Multi-agent mode groups clients by server.
	var perServer map[string][]string
	if err := json.Unmarshal(raw, &perServer); err == nil {
		var clients []string
		for _, list := range perServer {
			clients = append(clients, list...)
		}
		sort.Strings(clients)
		return len(clients) > 0, clients, nil
	}

	return false, nil, fmt.Errorf("%w: running field is neither bool nor client list", ErrUnexpectedShape)
}

func decodeClients(raw []byte) ([]string, error) {
	var clients []string
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if clients == nil {
		clients = []string{}
	}
	return clients, nil
}

func decodePercent(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return clampPercent(f), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err == nil {
			return clampPercent(f), nil
		}
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return 0, nil
	}
	return 0, fmt.Errorf("%w: percent is not a number", ErrUnexpectedShape)
}

func clampPercent(f float64) int {
	p := int(math.Round(f))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

type taskPayload struct {
	State    string          `json:"state"`
	Status   string          `json:"status"`
	Location string          `json:"location"`
	Path     string          `json:"path"`
	Filename string          `json:"filename"`
	Message  string          `json:"message"`
	Error    string          `json:"error"`
	Result   json.RawMessage `json:"result"`
	Meta     json.RawMessage `json:"meta"`
}

type taskMeta struct {
	Location string `json:"location"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Message  string `json:"message"`
}

// ParseTaskStatus normalizes the task-status payload, including celery style
// results nested under "result" or "meta".
func ParseTaskStatus(data []byte) (*models.TaskStatus, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: task status must be an object", ErrUnexpectedShape)
	}

	var p taskPayload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	state := p.State
	if state == "" {
		state = p.Status
	}
	if state == "" {
		return nil, fmt.Errorf("%w: task status has no state", ErrUnexpectedShape)
	}

	status := &models.TaskStatus{
		State:    models.NormalizeTaskState(state),
		Location: firstNonEmpty(p.Location, p.Path, p.Filename),
		Message:  firstNonEmpty(p.Message, p.Error),
	}

	for _, nested := range []json.RawMessage{p.Result, p.Meta} {
		if len(nested) == 0 {
			continue
		}
		var meta taskMeta
		if err := json.Unmarshal(nested, &meta); err != nil {
			// Celery stores exception text as a bare string.
			var text string
			if json.Unmarshal(nested, &text) == nil && status.Message == "" {
				status.Message = text
			}
			continue
		}
		if status.Location == "" {
			status.Location = firstNonEmpty(meta.Location, meta.Path, meta.Filename)
		}
		if status.Message == "" {
			status.Message = firstNonEmpty(meta.Error, meta.Message)
		}
	}

	return status, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
