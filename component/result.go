package component

import (
	"fmt"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
)

// Status is the outcome of processing one component folder.
type Status int

const (
	Succeeded Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result captures what happened to a single folder during one pass.
type Result struct {
	Pass    string
	Folder  Folder
	Status  Status
	Err     error
	Changes []string
}

// Summary aggregates the results of every pass over every folder.
type Summary struct {
	Results []Result
}

// Add records `result` and logs it.
func (s *Summary) Add(result Result) {
	s.Results = append(s.Results, result)
	switch result.Status {
	case Failed:
		log.Error("%s: %s: %s.\n", result.Pass, result.Folder.Path, result.Err)
	case Skipped:
		if result.Err != nil {
			log.Warning("%s: %s. Skipping it...\n", result.Pass, result.Err)
		}
	case Succeeded:
		for _, change := range result.Changes {
			log.Log("%s\n", change)
		}
	}
}

// Count returns the number of results with status `status`.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, result := range s.Results {
		if result.Status == status {
			n++
		}
	}
	return n
}

// Changes returns the number of changes over all results.
func (s *Summary) Changes() int {
	n := 0
	for _, result := range s.Results {
		n += len(result.Changes)
	}
	return n
}

// OK reports whether no folder-level operation failed.
func (s *Summary) OK() bool {
	return s.Count(Failed) == 0
}

// Run applies `process` to every folder independently. A failing folder never prevents the
// other folders from being processed.
func Run(pass string, folders []Folder, summary *Summary, process func(Folder) Result) {
	for _, folder := range folders {
		result := runOne(folder, process)
		result.Pass = pass
		result.Folder = folder
		summary.Add(result)
	}
}

func runOne(folder Folder, process func(Folder) Result) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Status: Failed, Err: fmt.Errorf("unexpected failure: %v", r)}
		}
	}()
	return process(folder)
}
