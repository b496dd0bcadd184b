package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/logger"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the dashboard page templates; register them with gin's SetHTMLTemplate
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// Form fields posted by the dashboard selector
const (
	FormProfileType   = "profile_type"
	FormUserSelection = "user-selection"
)

const (
	chartWidth  = 640
	chartHeight = 240
)

// DashboardHandler renders the HTML report page
type DashboardHandler struct {
	reports service.ReportServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reports service.ReportServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		reports: reports,
	}
}

type kindOption struct {
	Label    string
	Selected bool
}

type selectOption struct {
	ID       int64
	Name     string
	Selected bool
}

type lineChart struct {
	Width, Height int
	Positive      string
	Negative      string
	First, Last   string
	PositiveTotal int64
	NegativeTotal int64
}

type dashboardView struct {
	Title         string
	Label         string
	Plural        string
	Kinds         []kindOption
	Options       []selectOption
	Report        *service.ReportResponse
	Chart         *lineChart
	RiskAvailable bool
	RiskWidth     string
	RiskLabel     string
}

// Index renders the default page: employee 1
func (h *DashboardHandler) Index(c *gin.Context) {
	h.render(c, models.SubjectEmployee, 1)
}

// Employee renders /employee/:id
func (h *DashboardHandler) Employee(c *gin.Context) {
	h.renderParam(c, models.SubjectEmployee)
}

// Team renders /team/:id
func (h *DashboardHandler) Team(c *gin.Context) {
	h.renderParam(c, models.SubjectTeam)
}

// UpdateDropdown returns the <option> list for the profile type in the query string
func (h *DashboardHandler) UpdateDropdown(c *gin.Context) {
	kind, err := ParseSubjectKind(c.Query(FormProfileType))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	repo, err := h.reports.Repository(kind)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	c.HTML(http.StatusOK, "options", selectOptions(repo.ListNames(c.Request.Context()), 0))
}

// UpdateData redirects the selector form to the page of the chosen subject
func (h *DashboardHandler) UpdateData(c *gin.Context) {
	kind, err := ParseSubjectKind(c.PostForm(FormProfileType))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	id, err := ParseSubjectID(c.PostForm(FormUserSelection))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/%s/%d", kind, id))
}

func (h *DashboardHandler) renderParam(c *gin.Context, kind models.SubjectKind) {
	id, err := ParseSubjectID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	h.render(c, kind, id)
}

func (h *DashboardHandler) render(c *gin.Context, kind models.SubjectKind, id int64) {
	report, err := h.reports.Build(c.Request.Context(), kind, id)
	if err != nil {
		logger.WithContext(c.Request.Context()).
			WithFields(map[string]interface{}{"subject": string(kind), "id": id}).
			WithError(err).
			Error("failed to build dashboard report")
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "report unavailable")
		return
	}

	c.HTML(http.StatusOK, "dashboard", newDashboardView(report))
}

func newDashboardView(report *service.ReportResponse) dashboardView {
	view := dashboardView{
		Title:   report.Subject.Title() + " Performance",
		Label:   report.Subject.Title(),
		Plural:  report.Subject.Plural(),
		Options: selectOptions(report.Options, report.ID),
		Report:  report,
		Chart:   newLineChart(report.Cumulative),
	}
	for _, kind := range []models.SubjectKind{models.SubjectEmployee, models.SubjectTeam} {
		view.Kinds = append(view.Kinds, kindOption{Label: kind.Title(), Selected: kind == report.Subject})
	}
	if report.Risk != nil && report.Risk.Available {
		view.RiskAvailable = true
		view.RiskWidth = fmt.Sprintf("%.1f%%", report.Risk.Probability*100)
		view.RiskLabel = fmt.Sprintf("%.1f%% risk", report.Risk.Probability*100)
	}
	return view
}

func selectOptions(names []models.NameOption, selected int64) []selectOption {
	options := make([]selectOption, 0, len(names))
	for _, n := range names {
		options = append(options, selectOption{ID: n.ID, Name: n.Name, Selected: n.ID == selected})
	}
	return options
}

// newLineChart scales a cumulative series into SVG polyline points; nil for an empty series
func newLineChart(series []models.CumulativePoint) *lineChart {
	if len(series) == 0 {
		return nil
	}

	last := series[len(series)-1]
	peak := last.Positive
	if last.Negative > peak {
		peak = last.Negative
	}
	if peak == 0 {
		peak = 1
	}

	step := 0.0
	if len(series) > 1 {
		step = float64(chartWidth) / float64(len(series)-1)
	}
	scale := func(v int64) float64 {
		return float64(chartHeight) - float64(v)/float64(peak)*float64(chartHeight)
	}

	var positive, negative strings.Builder
	for i, p := range series {
		x := step * float64(i)
		fmt.Fprintf(&positive, "%.1f,%.1f ", x, scale(p.Positive))
		fmt.Fprintf(&negative, "%.1f,%.1f ", x, scale(p.Negative))
	}

	return &lineChart{
		Width:         chartWidth,
		Height:        chartHeight,
		Positive:      strings.TrimSpace(positive.String()),
		Negative:      strings.TrimSpace(negative.String()),
		First:         series[0].Date.String(),
		Last:          last.Date.String(),
		PositiveTotal: last.Positive,
		NegativeTotal: last.Negative,
	}
}
