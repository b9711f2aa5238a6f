package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/repository"
	"github.com/fixmycity/api-go/services"
)

// OfficeController handles the municipal office review endpoints.
type OfficeController struct {
	Service *services.ReportService
}

func NewOfficeController(service *services.ReportService) *OfficeController {
	return &OfficeController{Service: service}
}

// ListReports returns every report, newest first.
func (oc *OfficeController) ListReports(c *gin.Context) {
	reports, err := oc.Service.ViewAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: reports})
}

// UpdateReport sets a report's status from a multipart form, attaching
// the proof photo when an office_photo file is included.
func (oc *OfficeController) UpdateReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	status := c.PostForm("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	var proof []byte
	filename := ""
	if file, header, ferr := c.Request.FormFile("office_photo"); ferr == nil {
		defer file.Close()
		proof, err = io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read photo"})
			return
		}
		filename = header.Filename
	}

	err = oc.Service.Resolve(c.Request.Context(), uint(id), status, proof, filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Report updated successfully",
	})
}
