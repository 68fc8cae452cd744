package provisioning

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/imamik/tgprov/internal/platform/twingate"
)

// Observer defines the interface for structured observability during provisioning.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports progress for a phase
	Progress(phase string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "network-lookup", "resources")
	Message   string            // Human-readable message
	Resource  string            // Resource name if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventNetworkFound indicates the target network was located.
	EventNetworkFound EventType = "network.found"
	// EventNetworkNotFound indicates no network on the first page matched.
	EventNetworkNotFound EventType = "network.not_found"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"

	// EventProgress indicates progress in a long-running operation.
	EventProgress EventType = "progress"
)

// ConsoleObserver implements Observer using standard log package.
type ConsoleObserver struct {
	logger        *log.Logger
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer writing to the default logger.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		logger:        log.Default(),
		contextFields: make(map[string]string),
	}
}

// NewWriterObserver creates a console-style observer writing to w without timestamps.
func NewWriterObserver(w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{
		logger:        log.New(w, "", 0),
		contextFields: make(map[string]string),
	}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	o.logger.Printf(format, v...)
}

// Event implements Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Fields = mergeFields(o.contextFields, event.Fields)
	o.logger.Print(formatEvent(event))
}

// Progress implements Observer interface.
func (o *ConsoleObserver) Progress(phase string, current, total int) {
	if total == 0 {
		o.logger.Printf("[%s] Progress: %d/%d", phase, current, total)
		return
	}
	percentage := (current * 100) / total
	o.logger.Printf("[%s] Progress: %d/%d (%d%%)", phase, current, total, percentage)
}

// WithFields implements Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	return &ConsoleObserver{
		logger:        o.logger,
		contextFields: mergeFields(o.contextFields, fields),
	}
}

// mergeFields returns base overlaid with extra. Neither input is modified.
func mergeFields(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// formatEvent formats an event for console output. Fields are sorted by key.
func formatEvent(event Event) string {
	parts := []string{string(event.Type)}

	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}
	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		keys := make([]string, 0, len(event.Fields))
		for k := range event.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fieldParts := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, event.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// Helper functions for common events

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: "starting",
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogNetworkFound logs the located network.
func LogNetworkFound(observer Observer, phase, name, id string, connectors int) {
	observer.Event(Event{
		Type:     EventNetworkFound,
		Phase:    phase,
		Resource: name,
		Message:  fmt.Sprintf("found network with %d connector(s)", connectors),
		Fields: map[string]string{
			"id": id,
		},
	})
}

// LogNetworkNotFound logs a lookup that matched nothing.
func LogNetworkNotFound(observer Observer, phase, name string) {
	observer.Event(Event{
		Type:     EventNetworkNotFound,
		Phase:    phase,
		Resource: name,
		Message:  fmt.Sprintf("Network '%s' not found.", name),
	})
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, phase string, p PlannedResource) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Phase:    phase,
		Resource: p.Name,
		Message:  fmt.Sprintf("creating resource for %s address %s", strings.ToLower(p.Kind), p.Address),
		Fields: map[string]string{
			"kind":      p.Kind,
			"connector": p.ConnectorName,
		},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, phase string, p PlannedResource, res *twingate.CreatedResource) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    phase,
		Resource: res.Name,
		Message:  fmt.Sprintf("resource created (%s %s)", res.Address.Type, res.Address.Value),
		Fields: map[string]string{
			"kind": p.Kind,
			"id":   res.ID,
		},
	})
}

// LogResourceFailed logs a failed resource creation event.
func LogResourceFailed(observer Observer, phase string, p PlannedResource, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Phase:    phase,
		Resource: p.Name,
		Message:  fmt.Sprintf("failed: %v", err),
		Fields: map[string]string{
			"kind":    p.Kind,
			"address": p.Address,
		},
	})
}
