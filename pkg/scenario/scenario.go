// Package scenario loads and runs declarative interaction scripts
// against a headless runtime. Scenarios are YAML files describing a set
// of widgets, a sequence of input steps, and the outcomes to expect;
// they drive the same dispatch path as live input.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the scenario schema major version this package
// understands.
const SupportedVersion = "v1"

// Scenario is a declarative interaction script.
type Scenario struct {
	Version string   `yaml:"version"`
	Name    string   `yaml:"name,omitempty"`
	Widgets []Widget `yaml:"widgets"`
	Steps   []Step   `yaml:"steps"`
}

// Widget declares one entity to spawn before the steps run.
type Widget struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"`
	Label    string `yaml:"label,omitempty"`
	Checked  bool   `yaml:"checked,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Step is one action. Exactly one verb field may be set; Behind is a
// modifier listing the widgets behind a pointer verb's target, nearest
// first.
type Step struct {
	Tap     string `yaml:"tap,omitempty"`
	Down    string `yaml:"down,omitempty"`
	Up      string `yaml:"up,omitempty"`
	Click   string `yaml:"click,omitempty"`
	DragOff string `yaml:"drag-off,omitempty"`
	Cancel  string `yaml:"cancel,omitempty"`

	Behind []string `yaml:"behind,omitempty"`

	Focus      string `yaml:"focus,omitempty"`
	Key        string `yaml:"key,omitempty"`
	KeyRepeat  string `yaml:"key-repeat,omitempty"`
	KeyRelease string `yaml:"key-release,omitempty"`

	Disable    string      `yaml:"disable,omitempty"`
	Enable     string      `yaml:"enable,omitempty"`
	Despawn    string      `yaml:"despawn,omitempty"`
	SetChecked *CheckedArg `yaml:"set-checked,omitempty"`

	ExpectClicks  *int        `yaml:"expect-clicks,omitempty"`
	ExpectChanges *int        `yaml:"expect-changes,omitempty"`
	ExpectCloses  *int        `yaml:"expect-closes,omitempty"`
	ExpectFocus   string      `yaml:"expect-focus,omitempty"`
	ExpectChecked *CheckedArg `yaml:"expect-checked,omitempty"`
}

// CheckedArg names a checkbox and a checked value.
type CheckedArg struct {
	Widget string `yaml:"widget"`
	Value  bool   `yaml:"value"`
}

// Load parses and validates a scenario document.
func Load(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("scenario file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the schema version, widget declarations, and step
// shapes.
func (s *Scenario) Validate() error {
	version := strings.TrimSpace(s.Version)
	if version == "" {
		return fmt.Errorf("scenario is missing a version")
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid scenario version %q", version)
	}
	if semver.Major(version) != SupportedVersion {
		return fmt.Errorf("unsupported scenario version %q (supported: %s)", version, SupportedVersion)
	}

	if len(s.Widgets) == 0 {
		return fmt.Errorf("scenario declares no widgets")
	}
	seen := make(map[string]bool, len(s.Widgets))
	for i, w := range s.Widgets {
		if strings.TrimSpace(w.ID) == "" {
			return fmt.Errorf("widget %d has no id", i)
		}
		if seen[w.ID] {
			return fmt.Errorf("duplicate widget id %q", w.ID)
		}
		seen[w.ID] = true
		switch w.Kind {
		case "button", "checkbox", "barrier":
		default:
			return fmt.Errorf("widget %q has unknown kind %q", w.ID, w.Kind)
		}
		if w.Checked && w.Kind != "checkbox" {
			return fmt.Errorf("widget %q: only checkboxes can be checked", w.ID)
		}
	}

	for i := range s.Steps {
		if _, err := s.Steps[i].verb(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// verb returns the single action this step carries.
func (st *Step) verb() (string, error) {
	var verbs []string
	add := func(name string, set bool) {
		if set {
			verbs = append(verbs, name)
		}
	}
	add("tap", st.Tap != "")
	add("down", st.Down != "")
	add("up", st.Up != "")
	add("click", st.Click != "")
	add("drag-off", st.DragOff != "")
	add("cancel", st.Cancel != "")
	add("focus", st.Focus != "")
	add("key", st.Key != "")
	add("key-repeat", st.KeyRepeat != "")
	add("key-release", st.KeyRelease != "")
	add("disable", st.Disable != "")
	add("enable", st.Enable != "")
	add("despawn", st.Despawn != "")
	add("set-checked", st.SetChecked != nil)
	add("expect-clicks", st.ExpectClicks != nil)
	add("expect-changes", st.ExpectChanges != nil)
	add("expect-closes", st.ExpectCloses != nil)
	add("expect-focus", st.ExpectFocus != "")
	add("expect-checked", st.ExpectChecked != nil)

	switch len(verbs) {
	case 0:
		return "", fmt.Errorf("step has no action")
	case 1:
		return verbs[0], nil
	default:
		return "", fmt.Errorf("step has multiple actions: %s", strings.Join(verbs, ", "))
	}
}
