package eamvu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eamvu/ilos"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"":           "PKR 0",
		"0":          "PKR 0",
		"not-a-sum":  "PKR 0",
		"0.0":        "PKR 0",
		"500":        "PKR 500",
		"800000":     "PKR 800,000",
		"2500000":    "PKR 2,500,000",
		"5000000":    "PKR 5,000,000",
		"1234567890": "PKR 1,234,567,890",
	}

	for input, want := range cases {
		assert.Equal(t, want, FormatCurrency(input), "input %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "N/A", FormatDate(""))
	assert.Equal(t, "Invalid Date", FormatDate("yesterday-ish"))
	assert.Equal(t, "15 Jan 2024, 09:30 AM", FormatDate("2024-01-15T09:30:00Z"))
	assert.Equal(t, "13 Jan 2024, 04:10 PM", FormatDate("2024-01-13T16:10:00Z"))
	assert.Equal(t, "17 Jan 2024, 12:00 AM", FormatDate("2024-01-17"))
}

func TestTransformStatus(t *testing.T) {
	// Both backend casings map to the same label.
	assert.Equal(t, "Submitted to COPS", TransformStatus("SUBMITTED_TO_COPS"))
	assert.Equal(t, "Submitted to COPS", TransformStatus("submitted_to_cops"))
	assert.Equal(t, "Assigned to EAMVU Officer", TransformStatus("assigned_to_eavmu_officer"))

	// Unmapped values pass through unchanged, absent maps to Unknown.
	assert.Equal(t, "SOMETHING_NEW", TransformStatus("SOMETHING_NEW"))
	assert.Equal(t, "Unknown", TransformStatus(""))
}

func TestTransformStatusIdempotent(t *testing.T) {
	for raw := range statusLabels {
		once := TransformStatus(raw)
		assert.Equal(t, once, TransformStatus(once), "label %q must map to itself", once)
	}
}

func TestTransformDocumentStatus(t *testing.T) {
	assert.Equal(t, "Collected", TransformDocumentStatus("collected"))
	assert.Equal(t, "Collected", TransformDocumentStatus("COLLECTED"))
	assert.Equal(t, "Unknown", TransformDocumentStatus(""))
	assert.Equal(t, "odd-state", TransformDocumentStatus("odd-state"))
}

func TestDeterminePriority(t *testing.T) {
	assert.Equal(t, "low", DeterminePriority("", "APPROVED"))
	assert.Equal(t, "high", DeterminePriority("HIGH", "APPROVED"))
	assert.Equal(t, "medium", DeterminePriority("Medium", "APPROVED"))

	// SPU submissions boost to at least medium.
	assert.Equal(t, "medium", DeterminePriority("low", StatusSubmittedBySPU))
	assert.Equal(t, "medium", DeterminePriority("medium", StatusSubmittedBySPU))
	assert.Equal(t, "high", DeterminePriority("High", StatusSubmittedBySPU))
}

func TestTransformApplicationsRoundTrip(t *testing.T) {
	raw := []ilos.RawApplication{
		{
			ID:         "17",
			LosID:      "LOS-9001",
			LoanAmount: "2500000",
			Status:     "SUBMITTED_BY_SPU",
			Priority:   "Low",
			CreatedAt:  "2024-01-15T09:30:00Z",
		},
	}

	applications := TransformApplications(raw)
	require.Len(t, applications, 1)

	app := applications[0]
	assert.Equal(t, "LOS-9001", app.LosID)
	assert.Equal(t, "17", app.ID)
	assert.Equal(t, "PKR 2,500,000", app.Amount)
	assert.Equal(t, "Submitted by SPU", app.DisplayStatus)
	assert.Equal(t, "medium", app.DisplayPriority)
	assert.Equal(t, "15 Jan 2024, 09:30 AM", app.FormattedDate)

	// Absent phone and address take the display defaults.
	assert.Equal(t, DefaultApplicantPhone, app.ApplicantPhone)
	assert.Equal(t, DefaultAddress, app.Address)
}

func TestTransformApplicationDetails(t *testing.T) {
	assert.Nil(t, TransformApplicationDetails(nil))

	raw := &ilos.RawApplicationDetails{
		RawApplication: ilos.RawApplication{LosID: "LOS-9001", LoanAmount: "800000"},
		FormData: &ilos.RawFormData{
			Employment: ilos.RawEmploymentInfo{Employer: "ABC Company"},
		},
	}

	details := TransformApplicationDetails(raw)
	require.NotNil(t, details)
	assert.Equal(t, "LOS-9001", details.LosID)
	assert.Equal(t, "PKR 800,000", details.Amount)
	require.NotNil(t, details.FormData)
	assert.Equal(t, "ABC Company", details.FormData.Employment.Employer)
}

func TestTransformComments(t *testing.T) {
	raw := []ilos.RawComment{
		{ID: "1", Author: "SPU Analyst", Text: "call first", CreatedAt: "2024-01-15T10:00:00Z"},
		{ID: "2", CommentText: "verify office address", Date: "2024-01-14T15:00:00Z"},
		{ID: "3"},
	}

	comments := TransformComments(raw)
	require.Len(t, comments, 3)

	assert.Equal(t, "call first", comments[0].Text)
	assert.Equal(t, "SPU Analyst", comments[0].Author)

	// comment_text and date are the fallback field names.
	assert.Equal(t, "verify office address", comments[1].Text)
	assert.Equal(t, "Unknown", comments[1].Author)
	assert.Equal(t, "14 Jan 2024, 03:00 PM", comments[1].Date)

	assert.Equal(t, "No comment text", comments[2].Text)
	assert.Equal(t, "N/A", comments[2].Date)
}

func TestTransformDocuments(t *testing.T) {
	raw := []ilos.RawDocument{
		{ID: "1", Name: "CNIC Front & Back", Type: "CNIC", Status: "collected", Required: true},
		{ID: "2", Name: "Mystery Attachment", Status: "pending"},
	}

	documents := TransformDocuments(raw)
	require.Len(t, documents, 2)

	assert.Equal(t, "Collected", documents[0].DisplayStatus)
	assert.Equal(t, "#10B981", documents[0].StatusColor)
	assert.True(t, documents[0].Required)

	assert.Equal(t, "Unknown", documents[1].Type)
	assert.Equal(t, "Pending", documents[1].DisplayStatus)
	assert.Equal(t, "#F59E0B", documents[1].StatusColor)
}

func TestSortApplicationsByPriority(t *testing.T) {
	applications := []Application{
		{LosID: "LOS-LOW", Priority: "low", CreatedAt: "2024-01-20T00:00:00Z"},
		{LosID: "LOS-HIGH", Priority: "High", CreatedAt: "2024-01-01T00:00:00Z"},
		{LosID: "LOS-MED-OLD", Priority: "medium", CreatedAt: "2024-01-10T00:00:00Z"},
		{LosID: "LOS-MED-NEW", Priority: "medium", CreatedAt: "2024-01-12T00:00:00Z"},
	}

	sorted := SortApplicationsByPriority(applications)

	// Priority rank descending, then newest first within a rank.
	assert.Equal(t, "LOS-HIGH", sorted[0].LosID)
	assert.Equal(t, "LOS-MED-NEW", sorted[1].LosID)
	assert.Equal(t, "LOS-MED-OLD", sorted[2].LosID)
	assert.Equal(t, "LOS-LOW", sorted[3].LosID)
}

func TestSortApplicationsHighBeforeLowRegardlessOfInputOrder(t *testing.T) {
	a := Application{LosID: "A", Priority: "high"}
	b := Application{LosID: "B", Priority: "low"}

	sorted := SortApplicationsByPriority([]Application{b, a})
	assert.Equal(t, "A", sorted[0].LosID)

	sorted = SortApplicationsByPriority([]Application{a, b})
	assert.Equal(t, "A", sorted[0].LosID)
}
