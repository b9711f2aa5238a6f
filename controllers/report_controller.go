package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/services"
	"github.com/fixmycity/api-go/utils"
)

// ReportController handles citizen-facing report endpoints.
type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

// SubmitReport accepts a multipart form with a photo file and optional
// latitude/longitude fields, and files a new report for the session's
// submitter.
func (rc *ReportController) SubmitReport(c *gin.Context) {
	session := utils.GetSession(c)

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a photo"})
		return
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read photo"})
		return
	}

	// Missing or malformed coordinates default to 0, as submitted forms
	// without GPS access do.
	lat := parseCoord(c.PostForm("latitude"))
	lon := parseCoord(c.PostForm("longitude"))

	id, err := rc.Service.Submit(c.Request.Context(), session.SubmitterID, photo, header.Filename, lat, lon)
	if err != nil {
		if errors.Is(err, services.ErrMissingPhoto) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a photo"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    gin.H{"id": id},
		Message: "Report submitted successfully",
	})
}

// ListMyReports returns the session submitter's reports, newest first.
func (rc *ReportController) ListMyReports(c *gin.Context) {
	session := utils.GetSession(c)

	reports, err := rc.Service.ViewForSubmitter(session.SubmitterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: reports})
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
