package calls

import (
	"fmt"
	"strings"

	"github.com/rhino1998/calls/pkg/parser"
)

// Task is one priority level of candidates. The resolver only moves on to the
// next task when no candidate of this one applies.
type Task struct {
	Candidates []*Candidate
	Reference  *parser.ReferenceExpr

	// Super is the super reference the call was made through, if any.
	Super *parser.SuperExpr
}

type TaskHolder struct {
	reference *parser.ReferenceExpr
	super     *parser.SuperExpr
	visible   func(*Candidate) bool

	tiers [][]*Candidate
}

func NewTaskHolder(reference *parser.ReferenceExpr, super *parser.SuperExpr, visible func(*Candidate) bool) *TaskHolder {
	return &TaskHolder{
		reference: reference,
		super:     super,
		visible:   visible,
	}
}

func (h *TaskHolder) Add(tiers ...[]*Candidate) {
	h.tiers = append(h.tiers, tiers...)
}

// Tasks returns one task per tier that has visible candidates, in the order
// the tiers were added.
func (h *TaskHolder) Tasks() []*Task {
	var tasks []*Task
	for _, tier := range h.tiers {
		var candidates []*Candidate
		for _, c := range tier {
			if h.visible(c) {
				candidates = append(candidates, c)
			}
		}

		if len(candidates) == 0 {
			continue
		}

		tasks = append(tasks, &Task{
			Candidates: candidates,
			Reference:  h.reference,
			Super:      h.super,
		})
	}

	return tasks
}

func Format(tasks []*Task) string {
	if len(tasks) == 0 {
		return "no tasks\n"
	}

	var b strings.Builder
	for i, task := range tasks {
		fmt.Fprintf(&b, "task %d:\n", i+1)
		for _, c := range task.Candidates {
			fmt.Fprintf(&b, "  %s\n", c)
		}
	}

	return b.String()
}
