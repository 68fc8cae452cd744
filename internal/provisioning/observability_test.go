package provisioning

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/tgprov/internal/platform/twingate"
)

// MockObserver is a test implementation of Observer that records events.
// WithFields merges into the same recorder so events stay visible to the test.
type MockObserver struct {
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

func (m *MockObserver) Event(event Event) {
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, current, total int) {
	m.Event(Event{
		Type:    EventProgress,
		Phase:   phase,
		Message: "progress",
		Fields: map[string]string{
			"current": fmt.Sprint(current),
			"total":   fmt.Sprint(total),
		},
	})
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	for k, v := range fields {
		m.fields[k] = v
	}
	return m
}

func (m *MockObserver) eventsOfType(t EventType) []Event {
	var out []Event
	for _, e := range m.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestConsoleObserver_Event(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	observer := NewWriterObserver(&buf)

	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    "resources",
		Resource: "Resource-Public-1-2-3-4",
		Message:  "resource created",
		Fields: map[string]string{
			"kind": "Public",
			"id":   "r-1",
		},
	})

	assert.Equal(t,
		"resource.created [resources] resource=Resource-Public-1-2-3-4 resource created (id=r-1, kind=Public)\n",
		buf.String())
}

func TestConsoleObserver_WithFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	base := NewWriterObserver(&buf)

	withRun := base.WithFields(map[string]string{"run_id": "abc"})
	withRun.Event(Event{Type: EventPhaseStarted, Phase: "plan", Message: "starting"})

	assert.Contains(t, buf.String(), "(run_id=abc)")
	assert.Empty(t, base.contextFields, "parent observer must not be modified")
}

func TestConsoleObserver_EventFieldsOverrideContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	observer := NewWriterObserver(&buf).WithFields(map[string]string{"kind": "ctx"})

	observer.Event(Event{Type: EventProgress, Message: "m", Fields: map[string]string{"kind": "event"}})

	assert.Contains(t, buf.String(), "kind=event")
	assert.NotContains(t, buf.String(), "kind=ctx")
}

func TestConsoleObserver_Progress(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		current, total int
		want           string
	}{
		{"partial", 1, 4, "[resources] Progress: 1/4 (25%)\n"},
		{"complete", 3, 3, "[resources] Progress: 3/3 (100%)\n"},
		{"zero total", 0, 0, "[resources] Progress: 0/0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewWriterObserver(&buf).Progress("resources", tt.current, tt.total)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleObserver_Printf(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewWriterObserver(&buf).Printf("Searching for target network: %s...", "Branch-A")
	assert.Equal(t, "Searching for target network: Branch-A...\n", buf.String())
}

func TestNewConsoleObserver(t *testing.T) {
	t.Parallel()
	observer := NewConsoleObserver()
	require.NotNil(t, observer)
	assert.NotNil(t, observer.logger)
	assert.NotNil(t, observer.contextFields)
}

func TestLogHelpers(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	planned := PlannedResource{
		Kind:          "Private",
		Address:       "10.1.1.1",
		Name:          "Resource-Private-10-1-1-1",
		ConnectorName: "connector-a",
	}

	LogPhaseStart(observer, "resources")
	LogPhaseComplete(observer, "resources", 1500*time.Millisecond)
	LogPhaseFailed(observer, "resources", errors.New("boom"))
	LogNetworkFound(observer, "network-lookup", "Branch-A", "net-1", 2)
	LogNetworkNotFound(observer, "network-lookup", "Nope")
	LogResourceCreating(observer, "resources", planned)
	LogResourceCreated(observer, "resources", planned, &twingate.CreatedResource{
		ID:      "r-1",
		Name:    planned.Name,
		Address: twingate.ResourceAddress{Type: "IP", Value: "10.1.1.1"},
	})
	LogResourceFailed(observer, "resources", planned, errors.New("quota exceeded"))

	require.Len(t, observer.events, 8)

	assert.Equal(t, EventPhaseStarted, observer.events[0].Type)
	assert.Equal(t, "completed in 1.5s", observer.events[1].Message)
	assert.Equal(t, "failed: boom", observer.events[2].Message)

	assert.Equal(t, EventNetworkFound, observer.events[3].Type)
	assert.Equal(t, "net-1", observer.events[3].Fields["id"])

	assert.Equal(t, "Network 'Nope' not found.", observer.events[4].Message)

	assert.Equal(t, "creating resource for private address 10.1.1.1", observer.events[5].Message)
	assert.Equal(t, "connector-a", observer.events[5].Fields["connector"])

	assert.Equal(t, "r-1", observer.events[6].Fields["id"])
	assert.Equal(t, "resource created (IP 10.1.1.1)", observer.events[6].Message)

	assert.Equal(t, EventResourceFailed, observer.events[7].Type)
	assert.Equal(t, "10.1.1.1", observer.events[7].Fields["address"])
}
