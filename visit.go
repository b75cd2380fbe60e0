package eamvu

// VisitStatus tracks the officer's field visit for one application. It lives
// entirely in app state and is never sent to the backend.
type VisitStatus int

const (
	VisitPending VisitStatus = iota
	VisitInProgress
	VisitCompleted
)

func (vs VisitStatus) String() string {
	return [...]string{"Pending", "In Progress", "Completed"}[vs]
}

// Start moves a pending visit to in-progress. Completed is terminal, so Start
// is a no-op there.
func (vs VisitStatus) Start() VisitStatus {
	if vs == VisitPending {
		return VisitInProgress
	}
	return vs
}

// MarkVisited completes a visit. Only valid from in-progress; calls from any
// other state are ignored.
func (vs VisitStatus) MarkVisited() VisitStatus {
	if vs == VisitInProgress {
		return VisitCompleted
	}
	return vs
}

var visitStatusColors = map[string]string{
	"Pending":     "#f59e0b",
	"In Progress": "#3b82f6",
	"Completed":   "#10b981",
	"Rejected":    "#ef4444",
	"Collected":   "#8b5cf6",
	"Verified":    "#059669",
}

// VisitStatusColor is the badge color for a visit or collection state label;
// unknown labels fall back to neutral gray.
func VisitStatusColor(label string) string {
	if color, ok := visitStatusColors[label]; ok {
		return color
	}
	return FallbackColor
}

func (vs VisitStatus) Color() string {
	return VisitStatusColor(vs.String())
}
