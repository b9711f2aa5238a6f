package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fixmycity/api-go/models"
)

// ErrNotFound is returned when an update targets a report id that does
// not exist.
var ErrNotFound = errors.New("repository: report not found")

// ReportRepository is the durable table of reports. Id uniqueness and
// monotonicity come from the database autoincrement; concurrent inserts
// are safe without extra locking.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Insert creates a new report in Pending state and returns its id.
func (r *ReportRepository) Insert(submitterID, userPhoto string, lat, lon float64, category string) (uint, error) {
	report := models.Report{
		SubmitterID: submitterID,
		UserPhoto:   userPhoto,
		Status:      models.StatusPending,
		Category:    category,
		Latitude:    lat,
		Longitude:   lon,
	}
	if err := r.DB.Create(&report).Error; err != nil {
		return 0, fmt.Errorf("repository: insert report: %w", err)
	}
	return report.ID, nil
}

// ListBySubmitter returns every report filed by submitterID, newest
// first. Unbounded: grows with the submitter's report count.
func (r *ReportRepository) ListBySubmitter(submitterID string) ([]models.Report, error) {
	var reports []models.Report
	err := r.DB.Where("submitter_id = ?", submitterID).Order("id DESC").Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("repository: list by submitter: %w", err)
	}
	return reports, nil
}

// ListAll returns every report, newest first. Unbounded, office facing.
func (r *ReportRepository) ListAll() ([]models.Report, error) {
	var reports []models.Report
	if err := r.DB.Order("id DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("repository: list all: %w", err)
	}
	return reports, nil
}

// UpdateStatus sets the status of a report, and its office photo when
// officePhoto is non-nil. Both columns change in one UPDATE so no read
// can observe a half-applied resolution. A nil officePhoto leaves the
// prior photo untouched. Returns ErrNotFound when id does not exist.
func (r *ReportRepository) UpdateStatus(id uint, status string, officePhoto *string) error {
	updates := map[string]interface{}{"status": status}
	if officePhoto != nil {
		updates["office_photo"] = *officePhoto
	}

	res := r.DB.Model(&models.Report{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("repository: update report %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns a single report by id, or ErrNotFound.
func (r *ReportRepository) Get(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: get report %d: %w", id, err)
	}
	return &report, nil
}
