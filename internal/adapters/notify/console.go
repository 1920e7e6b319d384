// Package notify delivers user-facing notifications to a terminal.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/secondary"
)

// ConsoleNotifier writes one line per notification.
type ConsoleNotifier struct {
	out io.Writer
}

var _ secondary.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier creates a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify prints the message with a level marker.
func (n *ConsoleNotifier) Notify(ctx context.Context, level, message string) {
	switch level {
	case models.NotificationError:
		fmt.Fprintf(n.out, "%s %s\n", color.New(color.FgRed).Sprint("✗"), message)
	case models.NotificationSuccess:
		fmt.Fprintf(n.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), message)
	default:
		fmt.Fprintf(n.out, "• %s\n", message)
	}
}
