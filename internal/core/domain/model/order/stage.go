package order

import (
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// Stage is one of the four fixed phases of order fulfillment.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageSubmission is order intake; completed the moment the order exists.
	StageSubmission

	// StageDesign covers design work; tracks the ripping sub-process.
	StageDesign

	// StagePrepress covers plate making; tracks six sub-processes.
	StagePrepress

	// StageDelivery covers the physical handoff.
	StageDelivery
)

// Sub-process name vocabulary. These strings are the external contract.
const (
	SubProcessRipping      = "ripping"
	SubProcessPositioning  = "positioning"
	SubProcessLaserImaging = "laserImaging"
	SubProcessExposure     = "exposure"
	SubProcessWashout      = "washout"
	SubProcessDrying       = "drying"
	SubProcessFinishing    = "finishing"
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:    "unknown",
		StageSubmission: "submission",
		StageDesign:     "design",
		StagePrepress:   "prepress",
		StageDelivery:   "delivery",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StageSubmission: "submission",
		StageDesign:     "design",
		StagePrepress:   "prepress",
		StageDelivery:   "delivery",
	}
}

// requiredSubProcesses is the stage registry: the checklist each stage must
// finish before it counts as complete through sub-process tracking.
// Sub-processes within a stage are unordered and independent.
func requiredSubProcesses() map[Stage][]string {
	return map[Stage][]string{
		StageSubmission: {},
		StageDesign:     {SubProcessRipping},
		StagePrepress: {
			SubProcessPositioning,
			SubProcessLaserImaging,
			SubProcessExposure,
			SubProcessWashout,
			SubProcessDrying,
			SubProcessFinishing,
		},
		StageDelivery: {},
	}
}

// AllStages returns the four stages in pipeline order.
func AllStages() []Stage {
	return []Stage{StageSubmission, StageDesign, StagePrepress, StageDelivery}
}

// RequiredSubProcesses returns the checklist for a stage, in registry order.
func RequiredSubProcesses(stage Stage) []string {
	subs := requiredSubProcesses()[stage]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// IsRequiredSubProcess reports whether name belongs to the stage's checklist.
func IsRequiredSubProcess(stage Stage, name string) bool {
	for _, sub := range requiredSubProcesses()[stage] {
		if sub == name {
			return true
		}
	}
	return false
}

// StageFromString parses the wire representation of a stage.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a known stage", s),
	)
}

// Validate checks that the Stage is one of the defined values.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the wire name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StageStatus is the completion state of a stage.
type StageStatus int

const (
	// StageNotStarted means no work has been recorded for the stage.
	StageNotStarted StageStatus = iota

	// StageInProgress means at least one sub-process is done or the order has
	// entered the stage, but the stage is not yet fully satisfied.
	StageInProgress

	// StageCompleted means the stage is fully satisfied and stamped.
	StageCompleted
)

// String returns the display name of the stage status.
func (s StageStatus) String() string {
	switch s {
	case StageNotStarted:
		return "NotStarted"
	case StageInProgress:
		return "InProgress"
	case StageCompleted:
		return "Completed"
	default:
		return "NotStarted"
	}
}

// SubProcessStatus is the completion state of a single checklist item.
type SubProcessStatus int

const (
	// SubProcessNotStarted is the default state of a checklist item.
	SubProcessNotStarted SubProcessStatus = iota

	// SubProcessCompleted means the item was completed by a tracked actor.
	SubProcessCompleted
)

// String returns the display name of the sub-process status.
func (s SubProcessStatus) String() string {
	if s == SubProcessCompleted {
		return "Completed"
	}
	return "NotStarted"
}

// SubProcessState records completion of one checklist item: who and when.
// The zero value is a valid "not started" record, so map lookups on missing
// keys behave correctly.
type SubProcessState struct {
	Status      SubProcessStatus
	CompletedAt *time.Time
	CompletedBy *kernel.UUID
}

// IsCompleted reports whether the sub-process has been completed.
func (s SubProcessState) IsCompleted() bool {
	return s.Status == SubProcessCompleted
}

// StageState tracks one stage of an order: its completion status, the stamp of
// who finished it and when, and the per-sub-process checklist.
type StageState struct {
	Status         StageStatus
	CompletionDate *time.Time
	CompletedBy    *kernel.UUID
	SubProcesses   map[string]SubProcessState
}

// NewStageState creates a NotStarted stage with every required sub-process
// initialized to its NotStarted default.
func NewStageState(stage Stage) *StageState {
	subs := make(map[string]SubProcessState, len(requiredSubProcesses()[stage]))
	for _, name := range requiredSubProcesses()[stage] {
		subs[name] = SubProcessState{}
	}
	return &StageState{
		Status:       StageNotStarted,
		SubProcesses: subs,
	}
}

// SubProcess returns the state of a checklist item, with a safe NotStarted
// default for unknown names.
func (s *StageState) SubProcess(name string) SubProcessState {
	return s.SubProcesses[name]
}

// AllRequiredCompleted reports whether every sub-process the registry requires
// for the given stage is completed. A stage with an empty checklist is never
// satisfied through sub-process tracking alone.
func (s *StageState) AllRequiredCompleted(stage Stage) bool {
	required := requiredSubProcesses()[stage]
	if len(required) == 0 {
		return false
	}
	for _, name := range required {
		if !s.SubProcesses[name].IsCompleted() {
			return false
		}
	}
	return true
}

// markCompleted stamps the stage as completed by the given actor at the given time.
// Idempotent: an already-completed stage keeps its original stamp.
func (s *StageState) markCompleted(by kernel.UUID, at time.Time) {
	if s.Status == StageCompleted {
		return
	}
	s.Status = StageCompleted
	s.CompletionDate = &at
	s.CompletedBy = &by
}

// markInProgress moves a NotStarted stage to InProgress. No-op otherwise.
func (s *StageState) markInProgress() {
	if s.Status == StageNotStarted {
		s.Status = StageInProgress
	}
}

// clone returns a deep copy so callers cannot mutate aggregate state.
func (s *StageState) clone() *StageState {
	subs := make(map[string]SubProcessState, len(s.SubProcesses))
	for name, sub := range s.SubProcesses {
		subs[name] = sub
	}
	c := &StageState{
		Status:       s.Status,
		SubProcesses: subs,
	}
	if s.CompletionDate != nil {
		d := *s.CompletionDate
		c.CompletionDate = &d
	}
	if s.CompletedBy != nil {
		b := *s.CompletedBy
		c.CompletedBy = &b
	}
	return c
}
