package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Spinner shows that a fetch or other wait is in progress.
type Spinner struct {
	message string
	writer  io.Writer
	active  bool
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	frames  []string
	current int
}

// SpinnerFrames are the animation frames for the spinner.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerFramesASCII are fallback frames for non-Unicode terminals.
var SpinnerFramesASCII = []string{"|", "/", "-", "\\"}

// NewSpinner creates a spinner that draws on w, usually stderr.
func NewSpinner(w io.Writer, message string) *Spinner {
	frames := SpinnerFrames
	if !EnableColors() {
		frames = SpinnerFramesASCII
	}
	return &Spinner{
		message: message,
		writer:  w,
		frames:  frames,
	}
}

// Start begins the animation. Outside a terminal the message is printed once.
func (s *Spinner) Start() {
	if !EnableColors() {
		fmt.Fprintf(s.writer, "%s...\n", s.message)
		return
	}

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	s.mu.Unlock()

	go s.spin()
}

func (s *Spinner) spin() {
	defer close(s.stopped)

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := Progress(s.frames[s.current])
			msg := s.message
			s.current = (s.current + 1) % len(s.frames)
			s.mu.Unlock()

			fmt.Fprintf(s.writer, "\r%s %s", frame, msg)
		}
	}
}

// Stop stops the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.done)
	msg := s.message
	s.mu.Unlock()

	<-s.stopped
	fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", len(msg)+10))
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	fmt.Fprintln(s.writer, Mark(true)+" "+message)
}

// StopWithError stops the spinner and prints a failure line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	fmt.Fprintln(s.writer, Mark(false)+" "+message)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Elapsed formats the time since start, e.g. "fetched in 120ms".
func Elapsed(start time.Time) string {
	return formatDuration(time.Since(start))
}
