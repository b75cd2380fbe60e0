package eamvu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"eamvu/ilos"
)

// All functions in this file are pure: raw backend records in, normalized
// screen shapes out. No function here performs I/O or raises an error; bad
// input degrades to the documented fallback value instead.

var currencyPrinter = message.NewPrinter(language.English)

var priorityRank = map[string]int{
	"high":   3,
	"medium": 2,
	"low":    1,
}

// TransformApplications maps a raw EAMVU application list into the normalized
// shape the screens render.
func TransformApplications(raw []ilos.RawApplication) []Application {
	applications := make([]Application, 0, len(raw))
	for i := range raw {
		applications = append(applications, transformApplication(&raw[i]))
	}
	return applications
}

// ApplicationDetails is a normalized application together with the nested
// form sections the detail screen renders verbatim.
type ApplicationDetails struct {
	Application
	FormData *ilos.RawFormData
}

// TransformApplicationDetails maps a raw detail record; nil in, nil out.
func TransformApplicationDetails(raw *ilos.RawApplicationDetails) *ApplicationDetails {
	if raw == nil {
		return nil
	}

	return &ApplicationDetails{
		Application: transformApplication(&raw.RawApplication),
		FormData:    raw.FormData,
	}
}

func transformApplication(raw *ilos.RawApplication) Application {
	phone := raw.ApplicantPhone
	if phone == "" {
		phone = DefaultApplicantPhone
	}
	address := raw.Address
	if address == "" {
		address = DefaultAddress
	}

	return Application{
		ID:              raw.ID.String(),
		LosID:           raw.LosID,
		ApplicantName:   raw.ApplicantName,
		ApplicantPhone:  phone,
		LoanType:        raw.LoanType,
		Amount:          FormatCurrency(raw.LoanAmount.String()),
		Status:          raw.Status,
		Priority:        raw.Priority,
		AssignedOfficer: raw.AssignedOfficer,
		CreatedAt:       raw.CreatedAt,
		Branch:          raw.Branch,
		ApplicationType: raw.ApplicationType,
		Address:         address,
		Documents:       TransformDocuments(raw.Documents),
		DisplayStatus:   TransformStatus(raw.Status),
		DisplayPriority: DeterminePriority(raw.Priority, raw.Status),
		FormattedDate:   FormatDate(raw.CreatedAt),
	}
}

// TransformComments normalizes raw comment records. The backend has used two
// field names for the comment text and two for the date; whichever is set
// wins.
func TransformComments(raw []ilos.RawComment) []Comment {
	comments := make([]Comment, 0, len(raw))
	for _, rc := range raw {
		author := rc.Author
		if author == "" {
			author = "Unknown"
		}
		text := rc.Text
		if text == "" {
			text = rc.CommentText
		}
		if text == "" {
			text = "No comment text"
		}
		date := rc.CreatedAt
		if date == "" {
			date = rc.Date
		}

		comments = append(comments, Comment{
			ID:         rc.ID.String(),
			Author:     author,
			Text:       text,
			Date:       FormatDate(date),
			Department: rc.Department,
			FieldName:  rc.FieldName,
		})
	}
	return comments
}

func TransformDocuments(raw []ilos.RawDocument) []Document {
	documents := make([]Document, 0, len(raw))
	for _, rd := range raw {
		documentType := rd.Type
		if documentType == "" {
			documentType = "Unknown"
		}

		documents = append(documents, Document{
			ID:            rd.ID.String(),
			Name:          rd.Name,
			Type:          documentType,
			Status:        rd.Status,
			Required:      rd.Required,
			URL:           rd.URL,
			DisplayStatus: TransformDocumentStatus(rd.Status),
			StatusColor:   DocumentStatusColor(rd.Status),
		})
	}
	return documents
}

// FormatCurrency renders a backend amount as "PKR 1,234,567" with grouped
// thousands. Absent, zero, and unparseable amounts all render as "PKR 0".
func FormatCurrency(amount string) string {
	if amount == "" || amount == "0" {
		return "PKR 0"
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || value == 0 {
		return "PKR 0"
	}

	return currencyPrinter.Sprintf("PKR %v", number.Decimal(value))
}

// FormatDate renders a backend timestamp like "15 Jan 2024, 05:30 PM".
// Absent dates render as "N/A" and unparseable ones as "Invalid Date"; both
// literals are load-bearing for the screens.
func FormatDate(value string) string {
	if value == "" {
		return "N/A"
	}

	t, err := parseBackendTime(value)
	if err != nil {
		return "Invalid Date"
	}

	return t.Format("02 Jan 2006, 03:04 PM")
}

// parseBackendTime accepts the timestamp layouts the backend has been seen
// emitting.
func parseBackendTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// TransformStatus maps a backend status onto its display label. Unmapped
// values pass through unchanged, which also makes the function idempotent on
// its own outputs.
func TransformStatus(status string) string {
	if status == "" {
		return "Unknown"
	}
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func TransformDocumentStatus(status string) string {
	if status == "" {
		return "Unknown"
	}
	if label, ok := documentStatusLabels[strings.ToLower(status)]; ok {
		return label
	}
	return status
}

// DeterminePriority lowercases the backend priority, defaulting to "low"
// when missing. A fresh SPU submission boosts the result to at least
// "medium".
func DeterminePriority(priority, status string) string {
	if priority == "" {
		return "low"
	}

	normalized := strings.ToLower(priority)
	if status == StatusSubmittedBySPU {
		if normalized == "high" {
			return "high"
		}
		return "medium"
	}

	return normalized
}

// SortApplicationsByPriority orders in place by priority rank descending,
// then creation date newest first, and returns the slice. There is no
// tertiary key; equal-priority, equal-timestamp pairs keep no particular
// order.
func SortApplicationsByPriority(applications []Application) []Application {
	sort.Slice(applications, func(i, j int) bool {
		ri := priorityRank[strings.ToLower(applications[i].Priority)]
		rj := priorityRank[strings.ToLower(applications[j].Priority)]
		if ri != rj {
			return ri > rj
		}

		ti, _ := parseBackendTime(applications[i].CreatedAt)
		tj, _ := parseBackendTime(applications[j].CreatedAt)
		return ti.After(tj)
	})
	return applications
}
