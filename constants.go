package eamvu

import "strings"

// Application lifecycle statuses the backend emits. Both casings show up in
// the wild, so the lookup tables below keep both key variants verbatim
// instead of normalizing one away.
const (
	StatusSubmittedBySPU    = "SUBMITTED_BY_SPU"
	StatusSubmittedToCOPS   = "SUBMITTED_TO_COPS"
	StatusSubmittedToCIU    = "SUBMITTED_TO_CIU"
	StatusSubmittedToRRU    = "SUBMITTED_TO_RRU"
	StatusApproved          = "APPROVED"
	StatusRejected          = "REJECTED"
	StatusReturned          = "RETURNED"
	StatusAssignedToOfficer = "assigned_to_eavmu_officer"
	StatusReturnedByOfficer = "returned_by_eavmu_officer"
)

const (
	ApplicationTypeCashPlus           = "CashPlus"
	ApplicationTypeAutoLoan           = "AutoLoan"
	ApplicationTypeSMEAsaan           = "SMEASAAN"
	ApplicationTypeCommercialVehicle  = "CommercialVehicle"
	ApplicationTypeAmeenDrive         = "AmeenDrive"
	ApplicationTypePlatinumCreditCard = "PlatinumCreditCard"
	ApplicationTypeClassicCreditCard  = "ClassicCreditCard"
)

const (
	DocumentTypeCNIC          = "CNIC"
	DocumentTypeSalarySlip    = "Salary Slip"
	DocumentTypeBankStatement = "Bank Statement"
	DocumentTypePropertyDocs  = "Property Documents"
	DocumentTypeOther         = "Other"
)

// Display defaults for fields the backend leaves empty.
const (
	DefaultApplicantPhone = "+92-300-0000000"
	DefaultAddress        = "Address not available"
)

// FallbackColor is the neutral gray every color lookup falls back to.
const FallbackColor = "#6b7280"

// Success messages shown after write operations.
const (
	MsgStatusUpdated   = "Application status updated successfully."
	MsgCommentUpdated  = "Comment updated successfully."
	MsgDocumentUpdated = "Document status updated successfully."
	MsgDataFetched     = "Data loaded successfully."
)

var statusLabels = map[string]string{
	"SUBMITTED_BY_SPU":          "Submitted by SPU",
	"submitted_by_spu":          "Submitted by SPU",
	"SUBMITTED_TO_COPS":         "Submitted to COPS",
	"submitted_to_cops":         "Submitted to COPS",
	"SUBMITTED_TO_CIU":          "Submitted to CIU",
	"submitted_to_ciu":          "Submitted to CIU",
	"SUBMITTED_TO_RRU":          "Submitted to RRU",
	"submitted_to_rru":          "Submitted to RRU",
	"APPROVED":                  "Approved",
	"approved":                  "Approved",
	"REJECTED":                  "Rejected",
	"rejected":                  "Rejected",
	"RETURNED":                  "Returned",
	"returned":                  "Returned",
	"assigned_to_eavmu_officer": "Assigned to EAMVU Officer",
	"returned_by_eavmu_officer": "Returned by EAMVU Officer",
}

var documentStatusLabels = map[string]string{
	"pending":   "Pending",
	"collected": "Collected",
	"verified":  "Verified",
	"rejected":  "Rejected",
}

var statusColors = map[string]string{
	"SUBMITTED_BY_SPU":          "#3B82F6",
	"submitted_by_spu":          "#3B82F6",
	"SUBMITTED_TO_COPS":         "#F59E0B",
	"submitted_to_cops":         "#F59E0B",
	"SUBMITTED_TO_CIU":          "#EF4444",
	"submitted_to_ciu":          "#EF4444",
	"SUBMITTED_TO_RRU":          "#EC4899",
	"submitted_to_rru":          "#EC4899",
	"APPROVED":                  "#059669",
	"approved":                  "#059669",
	"REJECTED":                  "#DC2626",
	"rejected":                  "#DC2626",
	"RETURNED":                  "#F97316",
	"returned":                  "#F97316",
	"assigned_to_eavmu_officer": "#3B82F6",
	"returned_by_eavmu_officer": "#059669",
}

var priorityColors = map[string]string{
	"high":   "#DC2626",
	"medium": "#F59E0B",
	"low":    "#10B981",
}

var documentStatusColors = map[string]string{
	"pending":   "#F59E0B",
	"collected": "#10B981",
	"verified":  "#059669",
	"rejected":  "#DC2626",
}

// StatusColor returns the badge color for an application status. Unknown
// statuses fall back to neutral gray; the lookup never fails.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return FallbackColor
}

func PriorityColor(priority string) string {
	if color, ok := priorityColors[strings.ToLower(priority)]; ok {
		return color
	}
	return FallbackColor
}

func DocumentStatusColor(status string) string {
	if color, ok := documentStatusColors[strings.ToLower(status)]; ok {
		return color
	}
	return FallbackColor
}

// StatusOption is one selectable outcome with its display label and badge
// color.
type StatusOption struct {
	Value string
	Label string
	Color string
}

// EAMVUStatusOptions are the outcomes an officer can push an application to.
var EAMVUStatusOptions = []StatusOption{
	{Value: "SUBMITTED_TO_COPS", Label: "Submit to COPS", Color: "#F59E0B"},
	{Value: "SUBMITTED_TO_CIU", Label: "Submit to CIU", Color: "#EF4444"},
	{Value: "SUBMITTED_TO_RRU", Label: "Submit to RRU", Color: "#EC4899"},
	{Value: "Application_Returned", Label: "Return Application", Color: "#F97316"},
}

var DocumentStatusOptions = []StatusOption{
	{Value: "Collected", Label: "Collected", Color: "#10B981"},
	{Value: "Verified", Label: "Verified", Color: "#059669"},
	{Value: "Rejected", Label: "Rejected", Color: "#DC2626"},
	{Value: "Pending", Label: "Pending", Color: "#F59E0B"},
}
