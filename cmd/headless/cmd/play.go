package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/scenario"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Play a scenario file",
		Long: `Load a YAML scenario, run its steps against a fresh runtime, and
print the transcript: each executed step, the recorded outcome counts,
and the final state of every widget.

A scenario declares widget fixtures and a list of steps: pointer and
key input (tap, down, up, drag-off, key), state changes (disable,
set-checked, despawn), and expectations (expect-clicks, expect-focus,
expect-checked). The run stops at the first failing step.`,
		Usage: "headless play <scenario.yaml>",
		Run:   runPlay,
	})
}

func runPlay(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("scenario file is required\n\nUsage: headless play <scenario.yaml>")
	}
	path := args[0]

	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner()
	report, runErr := runner.Run(s)
	printTranscript(s, report, runner)

	if runErr != nil {
		if serr, ok := runErr.(*errors.ScenarioError); ok {
			serr.Path = path
		}
		return runErr
	}
	return nil
}

func printTranscript(s *scenario.Scenario, report *scenario.Report, runner *scenario.Runner) {
	name := report.Name
	if name == "" {
		name = "scenario"
	}
	fmt.Println(titleStyle.Render(name))

	for _, st := range report.Steps {
		status := okStyle.Render("ok")
		if st.Err != nil {
			status = failStyle.Render("FAIL") + "  " + failMsgStyle.Render(st.Err.Error())
		}
		fmt.Println(stepIndexStyle.Render(fmt.Sprintf("%d", st.Index+1)) + "  " +
			verbStyle.Render(st.Verb) +
			targetStyle.Render(st.Target) +
			status)
	}

	fmt.Println()
	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"clicks %d   changes %d   closes %d", report.Clicks, report.Changes, report.Closes)))

	fmt.Println()
	rt := runner.Runtime()
	for _, w := range s.Widgets {
		id, ok := runner.Entity(w.ID)
		if !ok {
			continue
		}
		var attrs []string
		if !rt.Store().Contains(id) {
			attrs = append(attrs, "despawned")
		} else {
			if rt.Store().IsDisabled(id) {
				attrs = append(attrs, "disabled")
			}
			if cb, isCheckbox := rt.Store().Checkbox(id); isCheckbox {
				attrs = append(attrs, fmt.Sprintf("checked=%v", cb.Checked))
			}
			if rt.Focus().IsFocused(id) {
				attrs = append(attrs, "focused")
			}
		}
		fmt.Println("  " + widgetStyle.Render(w.ID) +
			kindStyle.Render(w.Kind) +
			attrStyle.Render(strings.Join(attrs, "  ")))
	}
}
