package web

import (
	"errors"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"crackTimeBackend/internal/core/advisor"
	"crackTimeBackend/internal/core/domain"
	"crackTimeBackend/internal/port"
)

type AnalyzeRequest struct {
	Password string `json:"password"`
}

type BatchRequest struct {
	Passwords []string `json:"passwords"`
}

type ImpactRequest struct {
	Password    string   `json:"password"`
	Suggestions []string `json:"suggestions"`
}

type WebHandler struct {
	analysisService port.AnalysisService
	advisor         *advisor.Advisor
}

func NewWebHandler(svc port.AnalysisService, adv *advisor.Advisor) *WebHandler {
	return &WebHandler{
		analysisService: svc,
		advisor:         adv,
	}
}

func (h *WebHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	response, err := h.analysisService.AnalyzePassword(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPassword) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"result":              response,
		"combinationsDisplay": humanize.BigComma(response.Analysis.TotalCombinations),
	})
}

func (h *WebHandler) AnalyzeBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	results, err := h.analysisService.AnalyzeBatch(c.Request.Context(), req.Passwords)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"results": results})
}

func (h *WebHandler) Examples(c *gin.Context) {
	targetLength := 16
	if raw := c.Query("length"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(400, gin.H{"error": "length must be a positive integer"})
			return
		}
		targetLength = parsed
	}

	c.JSON(200, gin.H{"examples": h.advisor.GenerateExamplePasswords(targetLength)})
}

func (h *WebHandler) Passphrases(c *gin.Context) {
	c.JSON(200, gin.H{"suggestions": h.advisor.GetPassphraseSuggestions()})
}

func (h *WebHandler) BreachAdvice(c *gin.Context) {
	c.JSON(200, gin.H{"advice": h.advisor.GetBreachResponseAdvice()})
}

// Tips degrades to general advice for unrecognized industries; that is not
// an error condition.
func (h *WebHandler) Tips(c *gin.Context) {
	industry := domain.Industry(c.Param("industry"))
	c.JSON(200, gin.H{
		"industry": industry,
		"tips":     h.advisor.GetIndustrySpecificTips(industry),
	})
}

func (h *WebHandler) Impact(c *gin.Context) {
	var req ImpactRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	response, err := h.analysisService.AnalyzePassword(c.Request.Context(), req.Password)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	suggestions := req.Suggestions
	if len(suggestions) == 0 {
		suggestions = response.Suggestions
	}

	impact := h.advisor.CalculateImprovementImpact(&response.Analysis, suggestions)
	c.JSON(200, gin.H{"impact": impact})
}

func (h *WebHandler) Reports(c *gin.Context) {
	filter := port.ReportFilter{
		Level:    domain.StrengthLevel(c.Query("level")),
		MinScore: intQuery(c, "minScore"),
		MaxScore: intQuery(c, "maxScore"),
		Limit:    intQuery(c, "limit"),
		Offset:   intQuery(c, "offset"),
	}

	reports, err := h.analysisService.ListReports(c.Request.Context(), filter)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"reports": reports})
}

func (h *WebHandler) Metrics(c *gin.Context) {
	c.JSON(200, h.analysisService.SessionMetrics())
}

func intQuery(c *gin.Context, name string) int {
	value, _ := strconv.Atoi(c.Query(name))
	return value
}
