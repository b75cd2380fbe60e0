package ilos

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString decodes a JSON string, number, or null into a plain string. The
// backend is inconsistent about whether identifier and amount fields arrive
// quoted, so every field with that history uses this type.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unable to unmarshal flex string: %w", err)
		}
		*f = FlexString(s)
		return nil
	}

	// Bare number token, keep its literal text.
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// RawApplication is one application record exactly as the backend lists it.
// Transformation into the screen-facing shape happens in the root package.
type RawApplication struct {
	ID              FlexString    `json:"id"`
	LosID           string        `json:"los_id"`
	ApplicantName   string        `json:"applicant_name"`
	ApplicantPhone  string        `json:"applicant_phone"`
	LoanType        string        `json:"loan_type"`
	LoanAmount      FlexString    `json:"loan_amount"`
	Status          string        `json:"status"`
	Priority        string        `json:"priority"`
	AssignedOfficer string        `json:"assigned_officer"`
	CreatedAt       string        `json:"created_at"`
	Branch          string        `json:"branch"`
	ApplicationType string        `json:"application_type"`
	Address         string        `json:"address"`
	Documents       []RawDocument `json:"documents"`
}

// RawApplicationDetails is the full form record behind one application.
type RawApplicationDetails struct {
	RawApplication
	FormData *RawFormData `json:"form_data"`
}

type RawFormData struct {
	Applicant  RawApplicantInfo  `json:"applicant"`
	Employment RawEmploymentInfo `json:"employment"`
	Financial  RawFinancialInfo  `json:"financial"`
	References []RawReference    `json:"references"`
}

type RawApplicantInfo struct {
	CNIC          string     `json:"cnic"`
	DateOfBirth   string     `json:"date_of_birth"`
	FatherName    string     `json:"father_name"`
	MaritalStatus string     `json:"marital_status"`
	Education     string     `json:"education"`
	Dependents    FlexString `json:"dependents"`
}

type RawEmploymentInfo struct {
	Employer      string     `json:"employer"`
	Designation   string     `json:"designation"`
	YearsEmployed FlexString `json:"years_employed"`
	MonthlyIncome FlexString `json:"monthly_income"`
	OfficeAddress string     `json:"office_address"`
	OfficePhone   string     `json:"office_phone"`
}

type RawFinancialInfo struct {
	BankName       string     `json:"bank_name"`
	AccountNumber  string     `json:"account_number"`
	AverageBalance FlexString `json:"average_balance"`
	ExistingLoans  FlexString `json:"existing_loans"`
}

type RawReference struct {
	Name     string `json:"name"`
	CNIC     string `json:"cnic"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
	Address  string `json:"address"`
}

// RawComment carries both naming conventions the backend has used for the
// comment text and date fields; the transformer picks whichever is set.
type RawComment struct {
	ID          FlexString `json:"id"`
	Author      string     `json:"author"`
	Text        string     `json:"text"`
	CommentText string     `json:"comment_text"`
	CreatedAt   string     `json:"created_at"`
	Date        string     `json:"date"`
	Department  string     `json:"department"`
	FieldName   string     `json:"field_name"`
}

// commentsEnvelope matches the {"comments": [...]} wrapper shape some backend
// versions return instead of a bare array.
type commentsEnvelope struct {
	Comments []RawComment `json:"comments"`
}

type RawDocument struct {
	ID       FlexString `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Status   string     `json:"status"`
	Required bool       `json:"required"`
	URL      string     `json:"url"`
}

type CustomerStatusResponse struct {
	CNIC       string `json:"cnic"`
	Status     string `json:"status"`
	ConsumerID string `json:"consumer_id"`
}

type CIFResponse struct {
	ConsumerID  string `json:"consumer_id"`
	FullName    string `json:"full_name"`
	CNIC        string `json:"cnic"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Segment     string `json:"segment"`
}

type AgentAssignment struct {
	AgentID    string `json:"agent_id"`
	AgentName  string `json:"agent_name"`
	LosID      string `json:"los_id"`
	AssignedAt string `json:"assigned_at"`
}

type UpdateAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LosID   string `json:"losId"`
}

type UploadAck struct {
	Success    bool       `json:"success"`
	DocumentID FlexString `json:"document_id"`
	URL        string     `json:"url"`
	Message    string     `json:"message"`
}

// ConnectionTestResult is returned by the connectivity probes. They report
// failure in the result instead of returning an error so diagnostic flows can
// collect every outcome.
type ConnectionTestResult struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

// BatchItemResult is the settled outcome for one entry of a batch status
// update. Exactly one of Ack and Err is meaningful.
type BatchItemResult struct {
	Update StatusUpdate
	Ack    UpdateAck
	Err    error
}

type BatchResult struct {
	Successful int
	Failed     int
	Results    []BatchItemResult
}

// ApplicationStatistics are derived locally from the application list; there
// is no statistics endpoint on the backend.
type ApplicationStatistics struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	ByType     map[string]int `json:"byType"`
}
