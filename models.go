package eamvu

// Normalized shapes consumed by the screens. Every value is a fresh copy of
// one backend response; nothing here is shared or mutated across calls.

type Application struct {
	ID              string
	LosID           string
	ApplicantName   string
	ApplicantPhone  string
	LoanType        string
	Amount          string // display string, e.g. "PKR 2,500,000"
	Status          string
	Priority        string
	AssignedOfficer string
	CreatedAt       string
	Branch          string
	ApplicationType string
	Address         string
	Documents       []Document

	DisplayStatus   string
	DisplayPriority string
	FormattedDate   string
}

type Document struct {
	ID       string
	Name     string
	Type     string
	Status   string
	Required bool
	URL      string

	DisplayStatus string
	StatusColor   string
}

type Comment struct {
	ID         string
	Author     string
	Text       string
	Date       string
	Department string
	FieldName  string
}

// Agent is one entry of the static credential list. Not an identity system;
// see session.go.
type Agent struct {
	ID       string
	Name     string
	Password string
}
