// Package errors provides structured error handling for the headless runtime.
package errors

import (
	"fmt"
	"time"

	"github.com/go-drift/headless/pkg/entity"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRecord indicates widget record misuse (e.g. a kind-changing replace).
	KindRecord
	// KindDispatch indicates an event dispatch error.
	KindDispatch
	// KindCallback indicates a failure inside an application callback.
	KindCallback
	// KindScenario indicates a scenario file error.
	KindScenario
	// KindBackend indicates an input backend error.
	KindBackend
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindDispatch:
		return "dispatch"
	case KindCallback:
		return "callback"
	case KindScenario:
		return "scenario"
	case KindBackend:
		return "backend"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HeadlessError represents a structured error in the headless runtime.
type HeadlessError struct {
	// Op is the operation that failed (e.g., "widget.Store.Insert").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Entity is the widget entity involved, if any.
	Entity entity.ID
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HeadlessError) Error() string {
	if !e.Entity.IsNone() {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HeadlessError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Runtime.Dispatch").
	Op string
	// Entity is the widget entity whose callback panicked, if any.
	Entity entity.ID
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// RecordError represents invalid use of a widget record slot.
type RecordError struct {
	// Entity is the entity whose record was misused.
	Entity entity.ID
	// Have is the kind already stored for the entity.
	Have string
	// Want is the kind the caller tried to store.
	Want string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: have %s record, want %s", e.Entity, e.Have, e.Want)
}

// ScenarioError represents a failure to load or run a scenario file.
type ScenarioError struct {
	// Path is the scenario file path, if known.
	Path string
	// Step is the 1-based step number that failed, or 0 during loading.
	Step int
	// Err is the underlying error.
	Err error
}

func (e *ScenarioError) Error() string {
	switch {
	case e.Path != "" && e.Step > 0:
		return fmt.Sprintf("scenario %s step %d: %v", e.Path, e.Step, e.Err)
	case e.Step > 0:
		return fmt.Sprintf("scenario step %d: %v", e.Step, e.Err)
	case e.Path != "":
		return fmt.Sprintf("scenario %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("scenario: %v", e.Err)
	}
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the headless runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *HeadlessError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
