package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	apperrors "github.com/AmrrSalem/dsnd-dashboard-project/internal/errors"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/repository"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/service"

	"github.com/gin-gonic/gin"
)

// XLSXContentType is the media type of exported workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SubjectHandler serves the JSON query endpoints for employees and teams
type SubjectHandler struct {
	reports service.ReportServiceInterface
	risk    service.RiskServiceInterface
	export  service.ExportServiceInterface
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(reports service.ReportServiceInterface, risk service.RiskServiceInterface, export service.ExportServiceInterface) *SubjectHandler {
	return &SubjectHandler{
		reports: reports,
		risk:    risk,
		export:  export,
	}
}

// NamesResponse lists every entity of one subject kind
type NamesResponse struct {
	Subject models.SubjectKind  `json:"subject" example:"employee"`
	Names   []models.NameOption `json:"names"`
}

// NameResponse is the display name of one entity
type NameResponse struct {
	Subject models.SubjectKind `json:"subject" example:"employee"`
	ID      int64              `json:"id" example:"1"`
	Name    string             `json:"name" example:"Ada Lovelace"`
}

// EventsResponse holds per-date event counts of one entity
type EventsResponse struct {
	Subject models.SubjectKind  `json:"subject" example:"team"`
	ID      int64               `json:"id" example:"1"`
	Events  []models.EventCount `json:"events"`
}

// NotesResponse holds the notes of one entity
type NotesResponse struct {
	Subject models.SubjectKind `json:"subject" example:"team"`
	ID      int64              `json:"id" example:"1"`
	Notes   []models.NoteEntry `json:"notes"`
}

// FeaturesResponse holds the classifier input rows of one entity
type FeaturesResponse struct {
	Subject  models.SubjectKind     `json:"subject" example:"team"`
	ID       int64                  `json:"id" example:"1"`
	Features []models.FeatureRecord `json:"features"`
}

// ParseSubjectID accepts a positive base-10 integer and nothing else
func ParseSubjectID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidSubjectID
	}
	return id, nil
}

// ParseSubjectKind maps a path segment such as "employees" or "team" to a subject kind
func ParseSubjectKind(raw string) (models.SubjectKind, error) {
	kind, ok := models.ParseSubjectKind(raw)
	if !ok {
		return "", apperrors.ErrUnknownSubjectKind
	}
	return kind, nil
}

// resolveRepository reads :kind and returns the repository serving it, writing a 400 on failure
func (h *SubjectHandler) resolveRepository(c *gin.Context) (repository.SubjectRepositoryInterface, bool) {
	kind, err := ParseSubjectKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	repo, err := h.reports.Repository(kind)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return repo, true
}

// resolveSubject reads :kind and :id, writing a 400 on failure
func (h *SubjectHandler) resolveSubject(c *gin.Context) (repository.SubjectRepositoryInterface, int64, bool) {
	id, err := ParseSubjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, false
	}
	repo, ok := h.resolveRepository(c)
	if !ok {
		return nil, 0, false
	}
	return repo, id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func notFoundFor(kind models.SubjectKind) error {
	if kind == models.SubjectTeam {
		return apperrors.ErrTeamNotFound
	}
	return apperrors.ErrEmployeeNotFound
}

// ListNames returns every entity of a subject kind
// @Summary List subject names
// @Description Get the display name and id of every employee or team, ordered by id
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Success 200 {object} NamesResponse "Names retrieved"
// @Failure 400 {object} ErrorResponse "Unknown subject kind"
// @Router /api/v1/{kind} [get]
func (h *SubjectHandler) ListNames(c *gin.Context) {
	repo, ok := h.resolveRepository(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, NamesResponse{
		Subject: repo.Subject().Kind,
		Names:   repo.ListNames(c.Request.Context()),
	})
}

// GetName returns the display name of one entity
// @Summary Resolve a subject name
// @Description Get the display name of an employee or team
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {object} NameResponse "Name resolved"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Failure 404 {object} ErrorResponse "Subject not found"
// @Router /api/v1/{kind}/{id} [get]
func (h *SubjectHandler) GetName(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	kind := repo.Subject().Kind
	name := repo.ResolveName(c.Request.Context(), id)
	if name == "" {
		respondError(c, notFoundFor(kind))
		return
	}

	c.JSON(http.StatusOK, NameResponse{Subject: kind, ID: id, Name: name})
}

// GetEvents returns per-date event counts
// @Summary Get event counts
// @Description Get positive and negative event counts per calendar date, ascending
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {object} EventsResponse "Event counts retrieved"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Router /api/v1/{kind}/{id}/events [get]
func (h *SubjectHandler) GetEvents(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, EventsResponse{
		Subject: repo.Subject().Kind,
		ID:      id,
		Events:  repo.EventCounts(c.Request.Context(), id),
	})
}

// GetNotes returns the notes of one entity
// @Summary Get notes
// @Description Get the dated notes attached to an employee or team
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {object} NotesResponse "Notes retrieved"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Router /api/v1/{kind}/{id}/notes [get]
func (h *SubjectHandler) GetNotes(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, NotesResponse{
		Subject: repo.Subject().Kind,
		ID:      id,
		Notes:   repo.Notes(c.Request.Context(), id),
	})
}

// GetFeatures returns classifier input rows
// @Summary Get model features
// @Description Get the event sums fed to the classifier: one row per employee
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {object} FeaturesResponse "Features retrieved"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Router /api/v1/{kind}/{id}/features [get]
func (h *SubjectHandler) GetFeatures(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, FeaturesResponse{
		Subject:  repo.Subject().Kind,
		ID:       id,
		Features: repo.ModelFeatures(c.Request.Context(), id),
	})
}

// GetRisk returns the recruitment-risk prediction
// @Summary Predict recruitment risk
// @Description Score an employee, or the mean over a team's members; available is false without data
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {object} service.RiskResponse "Prediction computed"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Failure 500 {object} ErrorResponse "Classifier failure"
// @Router /api/v1/{kind}/{id}/risk [get]
func (h *SubjectHandler) GetRisk(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	risk, err := h.risk.Predict(c.Request.Context(), repo, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, risk)
}

// GetReport returns the composite dashboard report
// @Summary Get subject report
// @Description Get name, selector options, event counts, cumulative series, notes and risk in one call
// @Tags subjects
// @Produce json
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {object} service.ReportResponse "Report built"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Failure 500 {object} ErrorResponse "Classifier failure"
// @Router /api/v1/{kind}/{id}/report [get]
func (h *SubjectHandler) GetReport(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	report, err := h.reports.Build(c.Request.Context(), repo.Subject().Kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportReport streams the report as an XLSX workbook
// @Summary Export subject report
// @Description Download the report as a workbook with Summary, Events and Notes sheets
// @Tags subjects
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "Subject kind" Enums(employees, teams)
// @Param id path int true "Subject ID"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} ErrorResponse "Invalid kind or id"
// @Failure 500 {object} ErrorResponse "Export failure"
// @Router /api/v1/{kind}/{id}/export.xlsx [get]
func (h *SubjectHandler) ExportReport(c *gin.Context) {
	repo, id, ok := h.resolveSubject(c)
	if !ok {
		return
	}

	kind := repo.Subject().Kind
	report, err := h.reports.Build(c.Request.Context(), kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	// buffered so that a failed export still gets a JSON error
	var buf bytes.Buffer
	if err := h.export.WriteXLSX(c.Request.Context(), &buf, report); err != nil {
		respondError(c, fmt.Errorf("export %s %d: %w", kind, id, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%d.xlsx"`, kind, id))
	c.Data(http.StatusOK, XLSXContentType, buf.Bytes())
}
