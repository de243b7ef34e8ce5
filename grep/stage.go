package grep

import "fmt"

// Stage is a state of a search run.
type Stage int

const (
	StageParsing Stage = iota
	StageLoading
	StageMatching
	StageReporting
	StageSuccess
	StageFailed
)

var stageNames = [...]string{
	StageParsing:   "parsing",
	StageLoading:   "loading",
	StageMatching:  "matching",
	StageReporting: "reporting",
	StageSuccess:   "success",
	StageFailed:    "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Terminal reports whether no transition leaves s.
func (s Stage) Terminal() bool {
	return s == StageSuccess || s == StageFailed
}

// Failure is returned by Engine.Run when a stage fails.
type Failure struct {
	Stage Stage
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Stage, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
