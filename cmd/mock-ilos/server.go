package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"eamvu"
	"eamvu/ilos"
)

// Server holds the in-memory data set. One mutex guards everything; this is
// a dev stub, not a production service.
type Server struct {
	mu            sync.Mutex
	applications  []ilos.RawApplicationDetails
	comments      map[string][]ilos.RawComment
	assignments   []ilos.AgentAssignment
	customers     map[string]ilos.CustomerStatusResponse
	cifs          map[string]ilos.CIFResponse
	nextCommentID int
}

func NewServer() *Server {
	return &Server{
		applications:  sampleApplications(),
		comments:      sampleComments(),
		assignments:   sampleAssignments(),
		customers:     sampleCustomers(),
		cifs:          sampleCIFs(),
		nextCommentID: 100,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ilos.BackendError{ErrorText: http.StatusText(status), Message: message})
}

func (s *Server) findApplication(losID string) *ilos.RawApplicationDetails {
	for i := range s.applications {
		if s.applications[i].LosID == losID {
			return &s.applications[i]
		}
	}
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ilos.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
	})
}

func (s *Server) ListApplications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications := make([]ilos.RawApplication, 0, len(s.applications))
	for _, a := range s.applications {
		applications = append(applications, a.RawApplication)
	}
	respondJSON(w, http.StatusOK, applications)
}

func (s *Server) ApplicationDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	losID := chi.URLParam(r, "losId")
	application := s.findApplication(losID)
	if application == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no application with los_id %s", losID))
		return
	}
	respondJSON(w, http.StatusOK, application)
}

func (s *Server) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var request ilos.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	application := s.findApplication(request.LosID)
	if application == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no application with los_id %s", request.LosID))
		return
	}

	application.Status = request.Status
	respondJSON(w, http.StatusOK, ilos.UpdateAck{
		Success: true,
		Message: eamvu.MsgStatusUpdated,
		LosID:   request.LosID,
	})
}

func (s *Server) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var request ilos.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findApplication(request.LosID) == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no application with los_id %s", request.LosID))
		return
	}

	s.nextCommentID++
	s.comments[request.LosID] = append(s.comments[request.LosID], ilos.RawComment{
		ID:          ilos.FlexString(fmt.Sprintf("%d", s.nextCommentID)),
		Author:      "EAMVU Officer",
		CommentText: request.CommentText,
		CreatedAt:   time.Now().Format(time.RFC3339),
		Department:  "EAMVU",
		FieldName:   request.FieldName,
	})

	respondJSON(w, http.StatusOK, ilos.UpdateAck{
		Success: true,
		Message: eamvu.MsgCommentUpdated,
		LosID:   request.LosID,
	})
}

// ApplicationComments answers with the {"comments": [...]} wrapper shape on
// purpose; the client has to cope with it in production, so the stub serves
// it too.
func (s *Server) ApplicationComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	losID := chi.URLParam(r, "losId")
	comments := s.comments[losID]
	if comments == nil {
		comments = []ilos.RawComment{}
	}
	respondJSON(w, http.StatusOK, map[string][]ilos.RawComment{"comments": comments})
}

func (s *Server) AgentAssignments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	respondJSON(w, http.StatusOK, s.assignments)
}

func (s *Server) CustomerStatus(w http.ResponseWriter, r *http.Request) {
	var request ilos.CustomerStatusRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&request)
	}
	if request.CNIC == "" {
		respondError(w, http.StatusBadRequest, "cnic is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if customer, ok := s.customers[request.CNIC]; ok {
		respondJSON(w, http.StatusOK, customer)
		return
	}
	respondJSON(w, http.StatusOK, ilos.CustomerStatusResponse{CNIC: request.CNIC, Status: "NTB"})
}

func (s *Server) CIFDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	consumerID := chi.URLParam(r, "consumerId")
	cif, ok := s.cifs[consumerID]
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no CIF for consumer %s", consumerID))
		return
	}
	respondJSON(w, http.StatusOK, cif)
}

func (s *Server) ApplicationDocuments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	losID := chi.URLParam(r, "losId")
	application := s.findApplication(losID)
	if application == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no application with los_id %s", losID))
		return
	}

	documents := application.Documents
	if documents == nil {
		documents = []ilos.RawDocument{}
	}
	respondJSON(w, http.StatusOK, documents)
}

func (s *Server) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	losID := r.FormValue("losId")
	file, header, err := r.FormFile("document")
	if err != nil {
		respondError(w, http.StatusBadRequest, "document part is required")
		return
	}
	defer file.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	application := s.findApplication(losID)
	if application == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no application with los_id %s", losID))
		return
	}

	documentID := fmt.Sprintf("doc-%s-%d", losID, len(application.Documents)+1)
	url := fmt.Sprintf("https://documents.example.com/%s/%s", losID, header.Filename)
	application.Documents = append(application.Documents, ilos.RawDocument{
		ID:     ilos.FlexString(documentID),
		Name:   header.Filename,
		Type:   "Other",
		Status: "Collected",
		URL:    url,
	})

	respondJSON(w, http.StatusOK, ilos.UploadAck{
		Success:    true,
		DocumentID: ilos.FlexString(documentID),
		URL:        url,
		Message:    "Document uploaded successfully.",
	})
}
