package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wio-tracker/internal/models"
	"wio-tracker/internal/service"
)

// Handler bundles the HTTP endpoints over the attendance engine. It is thin
// plumbing: parsing, error mapping and JSON shaping only.
type Handler struct {
	calendarService *service.CalendarService
	statusService   *service.StatusService
	settingsService *service.SettingsService
	holidayService  *service.HolidayService
}

func NewHandler(
	calendarService *service.CalendarService,
	statusService *service.StatusService,
	settingsService *service.SettingsService,
	holidayService *service.HolidayService,
) *Handler {
	return &Handler{
		calendarService: calendarService,
		statusService:   statusService,
		settingsService: settingsService,
		holidayService:  holidayService,
	}
}

// RegisterRoutes attaches the API routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/month_data", h.GetMonthData)
		api.POST("/day_status", h.UpdateDayStatus)
		api.GET("/settings", h.GetSettings)
		api.POST("/settings", h.UpdateSettings)
		api.GET("/holidays", h.GetHolidays)
		api.POST("/holidays", h.AddHoliday)
		api.DELETE("/holidays", h.DeleteHoliday)
	}
}

// GetMonthData returns the calendar and statistics for a month.
// GET /api/month_data?year=2025&month=9
func (h *Handler) GetMonthData(c *gin.Context) {
	now := time.Now()

	year, ok := intQueryParam(c, "year", now.Year())
	if !ok {
		return
	}
	month, ok := intQueryParam(c, "month", int(now.Month()))
	if !ok {
		return
	}

	view, err := h.calendarService.GetMonthView(year, month, now)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateDayStatus sets or clears the status for one date.
// POST /api/day_status {"date": "2025-09-01", "status": "WIO"}
// A null or empty status clears the date back to unset.
func (h *Handler) UpdateDayStatus(c *gin.Context) {
	var input struct {
		Date   string  `json:"date" binding:"required"`
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	status := ""
	if input.Status != nil {
		status = *input.Status
	}

	if err := h.statusService.SetDayStatus(date, status); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSettings returns the configuration record.
// GET /api/settings
func (h *Handler) GetSettings(c *gin.Context) {
	target, err := h.settingsService.TargetPercentage()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wio_target": target})
}

// UpdateSettings updates the configuration record.
// POST /api/settings {"wio_target": 40}
func (h *Handler) UpdateSettings(c *gin.Context) {
	var input struct {
		WIOTarget *float64 `json:"wio_target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.settingsService.SetTargetPercentage(*input.WIOTarget); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetHolidays lists the holidays of a year: the user's custom entries plus
// the national weekday holidays known to the calendar.
// GET /api/holidays?year=2025
func (h *Handler) GetHolidays(c *gin.Context) {
	year, ok := intQueryParam(c, "year", time.Now().Year())
	if !ok {
		return
	}

	custom, err := h.holidayService.ListYear(year)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	type holidayEntry struct {
		Date        string `json:"date"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}

	entries := make([]holidayEntry, 0, len(custom))
	seen := make(map[string]bool, len(custom))
	for _, ch := range custom {
		key := models.DateKeyYMD(ch.Year, ch.Month, ch.Day)
		entries = append(entries, holidayEntry{Date: key, Description: ch.Label, Type: "custom"})
		seen[key] = true
	}

	for _, nat := range h.holidayService.NationalInYear(year) {
		key := models.DateKey(nat.Date)
		if seen[key] {
			continue
		}
		entries = append(entries, holidayEntry{Date: key, Description: nat.Name, Type: "national"})
	}

	c.JSON(http.StatusOK, entries)
}

// AddHoliday declares a custom holiday.
// POST /api/holidays {"date": "2025-09-10", "description": "team offsite"}
func (h *Handler) AddHoliday(c *gin.Context) {
	var input struct {
		Date        string `json:"date" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if err := h.holidayService.Add(date, input.Description); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteHoliday removes a custom holiday.
// DELETE /api/holidays?date=2025-09-10
func (h *Handler) DeleteHoliday(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if err := h.holidayService.Remove(date); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleServiceError maps the engine's error taxonomy to HTTP codes.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status, expected WIO, WFH, LEAVE or SICK"})
	case errors.Is(err, service.ErrOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "target percentage must be between 0 and 100"})
	case errors.Is(err, service.ErrDuplicateHoliday):
		c.JSON(http.StatusConflict, gin.H{"error": "a holiday already exists for this date"})
	case errors.Is(err, service.ErrHolidayNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no holiday found for this date"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDate parses an ISO calendar date in the deployment's local calendar.
func parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, service.ErrInvalidDate
	}
	return date, nil
}

// intQueryParam reads an integer query parameter, responding with 400 on a
// malformed value. The second return value is false when a response has
// already been written.
func intQueryParam(c *gin.Context, name string, defaultVal int) (int, bool) {
	valStr := c.Query(name)
	if valStr == "" {
		return defaultVal, true
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return val, true
}
