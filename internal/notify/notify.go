// Package notify carries the toast contract: every successful mutation in
// the task and journal stores reports a title/description pair here.
package notify

import (
	"fmt"
	"io"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

type Notifier interface {
	Toast(title, description string)
}

// Discard drops all toasts. Used by tests and headless callers.
type Discard struct{}

func (Discard) Toast(string, string) {}

// Printer writes toasts as styled lines, the CLI's stand-in for the
// dashboard toast area.
type Printer struct {
	Out io.Writer
}

func (p Printer) Toast(title, description string) {
	fmt.Fprintf(p.Out, "%s %s\n", ui.Good.Render(ui.IconSparkle+" "+title), ui.Muted.Render(description))
}
