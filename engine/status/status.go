package status

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/scheduler"
	"github.com/fatih/color"
)

// Severity classifies a status message.
type Severity int

const (
	// SeverityInfo is a neutral notice.
	SeverityInfo Severity = iota
	// SeveritySuccess reports a successful build. Success messages expire.
	SeveritySuccess
	// SeverityWarning reports a degraded but working state.
	SeverityWarning
	// SeverityError reports a failed build or a missing capability. Errors persist until replaced.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

const (
	// BuildSucceededMessage is the status text shown after a successful build.
	BuildSucceededMessage = "Shader compiled successfully!"

	// DefaultSuccessExpiry is how long a success message stays visible.
	DefaultSuccessExpiry = 3 * time.Second
)

// Message is one status area entry.
type Message struct {
	Severity Severity
	Text     string
	At       time.Time
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s", m.Severity, m.Text)
}

// status is the implementation of the Status interface.
type status struct {
	mu *sync.Mutex

	clock         scheduler.Clock
	successExpiry time.Duration

	current *Message
	expires time.Time

	out     io.Writer
	palette map[Severity]*color.Color
}

// Status is the diagnostic sink behind the lab's status area. It holds one message at a time:
// a new report replaces the previous one, success messages disappear after an expiry, and every
// other severity stays until replaced or cleared.
type Status interface {
	// Report replaces the current message.
	//
	// Parameters:
	//   - severity: the message severity
	//   - text: the message text, shown verbatim
	Report(severity Severity, text string)

	// Current returns the visible message.
	//
	// Returns:
	//   - Message: the visible message
	//   - bool: false if nothing is visible, including after a success message expired
	Current() (Message, bool)

	// Clear removes the current message.
	Clear()
}

var _ Status = &status{}

// NewStatus creates a new empty Status.
//
// Parameters:
//   - opts: a variadic list of StatusBuilderOption functions to configure the status area
//
// Returns:
//   - Status: a new Status
func NewStatus(opts ...StatusBuilderOption) Status {
	s := &status{
		mu:            &sync.Mutex{},
		clock:         scheduler.RealClock(),
		successExpiry: DefaultSuccessExpiry,
		palette: map[Severity]*color.Color{
			SeverityInfo:    color.New(color.FgCyan),
			SeveritySuccess: color.New(color.FgGreen, color.Bold),
			SeverityWarning: color.New(color.FgYellow),
			SeverityError:   color.New(color.FgRed, color.Bold),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *status) Report(severity Severity, text string) {
	s.mu.Lock()
	now := s.clock.Now()
	msg := Message{Severity: severity, Text: text, At: now}
	s.current = &msg
	s.expires = time.Time{}
	if severity == SeveritySuccess && s.successExpiry > 0 {
		s.expires = now.Add(s.successExpiry)
	}
	out := s.out
	c := s.palette[severity]
	s.mu.Unlock()

	common.Logger().Debug("status", "severity", severity.String(), "text", text)
	if out != nil && c != nil {
		c.Fprintln(out, msg.String())
	}
}

func (s *status) Current() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Message{}, false
	}
	if !s.expires.IsZero() && !s.clock.Now().Before(s.expires) {
		s.current = nil
		return Message{}, false
	}
	return *s.current, true
}

func (s *status) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
