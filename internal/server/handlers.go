package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/proposal-studio/internal/rendering"
	"github.com/jonathan/proposal-studio/internal/studio"
	"github.com/jonathan/proposal-studio/internal/types"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// VocabularyResponse lists the choices offered by the intake form.
type VocabularyResponse struct {
	GuestCounts []string `json:"guestCounts"`
	BudgetBands []string `json:"budgetBands"`
	VibeTags    []string `json:"vibeTags"`
	Modes       []string `json:"modes"`
}

// IntakeResponse is returned after an intake is submitted.
type IntakeResponse struct {
	Project       ProjectResponse `json:"project"`
	ProfileSource types.Source    `json:"profileSource"`
}

// ProjectResponse is a project plus whether a proposal is currently being generated for it.
type ProjectResponse struct {
	types.Project
	Generating bool `json:"generating"`
}

// GenerateRequest represents the request body for proposal generation
type GenerateRequest struct {
	Mode    string          `json:"mode"`
	Options json.RawMessage `json:"options,omitempty"`
}

// ProposalResponse is returned after a proposal is generated.
type ProposalResponse struct {
	Proposal types.ProposalPackage `json:"proposal"`
	Source   types.Source          `json:"source"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVocabulary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, VocabularyResponse{
		GuestCounts: types.GuestCountBands,
		BudgetBands: types.BudgetBands,
		VibeTags:    types.VibeTags,
		Modes:       []string{string(types.ModeTeaser), string(types.ModeFull)},
	})
}

// handleSubmitIntake validates an intake and creates a Lead project with its style profile
func (s *Server) handleSubmitIntake(w http.ResponseWriter, r *http.Request) {
	var intake types.IntakeData
	if err := decodeStrict(r, &intake); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.studio.SubmitIntake(r.Context(), intake)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, IntakeResponse{
		Project:       s.projectResponse(result.Project),
		ProfileSource: result.ProfileSource,
	})
}

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	projects := s.studio.Projects()
	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = s.projectResponse(p)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"projects": resp})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.studio.Project(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.projectResponse(project))
}

// handleToggleStatus swaps a project between Lead and Contract Signed
func (s *Server) handleToggleStatus(w http.ResponseWriter, r *http.Request) {
	project, err := s.studio.ToggleStatus(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.projectResponse(project))
}

func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	project, err := s.studio.Project(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"proposals": project.Proposals})
}

// handleGenerateProposal generates a proposal package synchronously
func (s *Server) handleGenerateProposal(w http.ResponseWriter, r *http.Request) {
	mode, opts, err := decodeGenerateRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.studio.GenerateProposal(r.Context(), r.PathValue("id"), mode, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, ProposalResponse{Proposal: result.Package, Source: result.Source})
}

// handleGenerateProposalStream generates a proposal and reports progress via SSE
func (s *Server) handleGenerateProposalStream(w http.ResponseWriter, r *http.Request) {
	mode, opts, err := decodeGenerateRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	projectID := r.PathValue("id")
	if err := sse.WriteEvent(EventGenerating, map[string]string{"projectId": projectID, "mode": string(mode)}); err != nil {
		s.logger.Warn().Err(err).Msg("error writing SSE event")
		return
	}

	result, err := s.studio.GenerateProposal(r.Context(), projectID, mode, opts)
	if err != nil {
		sse.WriteError(HTTPStatus(err), err.Error())
		return
	}

	if err := sse.WriteEvent(EventProposal, result.Package); err != nil {
		s.logger.Warn().Err(err).Msg("error writing SSE event")
		return
	}
	sse.WriteComplete(result.Package.ID, string(result.Source))
}

func (s *Server) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	pkg, err := s.studio.Proposal(r.PathValue("id"), r.PathValue("proposal_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, pkg)
}

// handleRenderProposal returns a stored proposal as a Markdown document
func (s *Server) handleRenderProposal(w http.ResponseWriter, r *http.Request) {
	pkg, err := s.studio.Proposal(r.PathValue("id"), r.PathValue("proposal_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := rendering.RenderMarkdown(&pkg)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, doc); err != nil {
		s.logger.Warn().Err(err).Msg("error writing rendered proposal")
	}
}

func (s *Server) projectResponse(p types.Project) ProjectResponse {
	return ProjectResponse{Project: p, Generating: s.studio.Generating(p.ID)}
}

// decodeStrict decodes a JSON body into v, rejecting unknown fields and trailing data.
func decodeStrict(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if len(body) > maxBodyBytes {
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("exceeds %d bytes", maxBodyBytes)}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if dec.More() {
		return &ErrValidation{Field: "body", Message: "unexpected data after JSON object"}
	}
	return nil
}

func decodeGenerateRequest(r *http.Request) (types.ProposalMode, types.GenerationOptions, error) {
	var req GenerateRequest
	if err := decodeStrict(r, &req); err != nil {
		return "", types.GenerationOptions{}, err
	}

	mode, err := types.ParseProposalMode(req.Mode)
	if err != nil {
		return "", types.GenerationOptions{}, &ErrValidation{Field: "mode", Message: err.Error()}
	}

	opts, err := types.DecodeGenerationOptions(req.Options)
	if err != nil {
		return "", types.GenerationOptions{}, &studio.InputError{Input: "generation options", Cause: err}
	}
	return mode, opts, nil
}
