package ilos

import "fmt"

// Endpoint paths on the ILOS backend. Parametrized builders interpolate the
// identifier positionally and never validate it; a malformed LOS ID just
// produces a malformed URL and surfaces as a 404.
const (
	EndpointHealth            = "/health"
	EndpointEAMVUApplications = "/api/applications/department/eamvu"
	EndpointUpdateStatus      = "/api/applications/update-status"
	EndpointUpdateComment     = "/api/applications/update-comment"
	EndpointAgentAssignments  = "/api/applications/test/assignments"
	EndpointCustomerStatus    = "/getNTB_ETB"
	EndpointUploadDocument    = "/api/upload-document"
	EndpointTestApplications  = "/api/test-applications"
)

func EndpointApplicationDetails(losID string) string {
	return fmt.Sprintf("/api/applications/form/%s", losID)
}

func EndpointApplicationComments(losID string) string {
	return fmt.Sprintf("/api/applications/comments/%s", losID)
}

func EndpointApplicationDocuments(losID string) string {
	return fmt.Sprintf("/api/documents/%s", losID)
}

func EndpointCIFDetails(consumerID string) string {
	return fmt.Sprintf("/cif/%s", consumerID)
}
