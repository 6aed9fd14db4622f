package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
)

// Printer writes workflow progress as plain text, for output that is not a terminal.
type Printer struct {
	out   io.Writer
	multi bool

	toolHeader bool
	err        error
}

// NewPrinter creates a Printer. With multi set, each question gets a banner.
func NewPrinter(out io.Writer, multi bool) *Printer {
	return &Printer{out: out, multi: multi}
}

// Run prints events until the channel is closed and returns the first write error.
func (p *Printer) Run(events <-chan workflow.Event) error {
	for ev := range events {
		p.print(ev)
	}
	return p.err
}

func (p *Printer) print(ev workflow.Event) {
	switch e := ev.(type) {
	case workflow.QuestionEvent:
		p.toolHeader = false
		if p.multi {
			bar := strings.Repeat("=", 50)
			p.printf("\n%s\n🌍 %s\n%s\n", bar, e.City, bar)
		}
		p.printf("Q: %s\n", e.Prompt)

	case workflow.ThinkingEvent:
		if e.Round == 1 {
			p.printf("💬 Step 1: asking the model with the weather tool\n")
		} else {
			p.printf("\n💭 Step 3: composing the final answer\n")
		}

	case workflow.ToolDecisionEvent:
		if e.ToolCalls > 0 {
			p.printf("✅ The model decided to call a tool.\n")
		} else {
			p.printf("❌ The model answered without calling a tool.\n")
		}

	case workflow.ToolStartEvent:
		if !p.toolHeader {
			p.toolHeader = true
			p.printf("\n🔧 Step 2: running the requested tool\n")
		}
		p.printf("- call: %s\n", services.FormatToolDescription(e.ToolName, e.RequestDisplay))

	case workflow.ToolEndEvent:
		result := e.Content
		if result == "" {
			result = services.RenderToolDisplay(e.Display)
		}
		p.printf("- result: %s\n", result)

	case workflow.AnswerEvent:
		p.printf("\n===== Final answer =====\n%s\n", e.Text)

	case workflow.DoneEvent:
		if e.Err != nil {
			p.printf("✘ %v\n", e.Err)
		}
	}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}
