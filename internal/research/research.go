// Package research tracks the agency's single-slot linear research tree.
package research

// Research holds at most one active project. Progress accumulates toward a
// fixed cost; completion moves the project into the ordered completed list.
type Research struct {
	Current   string   `json:"current_project"` // empty = none active
	Progress  int      `json:"progress"`
	Completed []string `json:"completed_projects"`

	cost int
}

// New creates a research tracker with the given per-project cost.
func New(projectCost int) *Research {
	return &Research{cost: projectCost}
}

// StartProject activates a project. Fails if the project is already
// completed or another project is active.
func (r *Research) StartProject(project string) bool {
	if r.Current != "" || r.IsCompleted(project) {
		return false
	}
	r.Current = project
	r.Progress = 0
	return true
}

// AdvanceProject adds progress to the active project. Returns (completed,
// ok): ok is false when no project is active; completed is true on the
// call that reaches the cost, which moves the project to the completed
// list, clears the slot, and resets progress.
func (r *Research) AdvanceProject(amount int) (completed, ok bool) {
	if r.Current == "" {
		return false, false
	}
	r.Progress += amount
	if r.Progress >= r.cost {
		r.Completed = append(r.Completed, r.Current)
		r.Current = ""
		r.Progress = 0
		return true, true
	}
	return false, true
}

// IsCompleted reports whether a project has been finished.
func (r *Research) IsCompleted(project string) bool {
	for _, p := range r.Completed {
		if p == project {
			return true
		}
	}
	return false
}

// Available filters a project list down to those not yet completed.
func (r *Research) Available(projects []string) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if !r.IsCompleted(p) {
			out = append(out, p)
		}
	}
	return out
}

// Fraction is the active project's progress in [0, 1), or 0 when idle.
func (r *Research) Fraction() float64 {
	if r.Current == "" {
		return 0
	}
	return float64(r.Progress) / float64(r.cost)
}
