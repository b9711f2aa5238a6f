package services

import (
	"context"
	"errors"
	"log"

	"github.com/fixmycity/api-go/classifier"
	"github.com/fixmycity/api-go/models"
	"github.com/fixmycity/api-go/repository"
	"github.com/fixmycity/api-go/storage"
)

// ErrMissingPhoto is returned by Submit when no photo bytes were given.
var ErrMissingPhoto = errors.New("services: missing photo")

// ReportService drives the report lifecycle: citizen submission and
// office resolution. All flow is one-directional: service -> blob store
// / classifier / repository.
type ReportService struct {
	Store      storage.BlobStore
	Classifier classifier.Classifier
	Repo       *repository.ReportRepository
}

func NewReportService(store storage.BlobStore, cls classifier.Classifier, repo *repository.ReportRepository) *ReportService {
	return &ReportService{Store: store, Classifier: cls, Repo: repo}
}

// Submit stores the photo, classifies it and inserts the report row,
// returning the new id. A photo that fails classification still gets
// recorded, under the Unknown category: the report is the priority
// artifact, the label is best effort. Storage failures abort the whole
// submission with nothing persisted.
func (s *ReportService) Submit(ctx context.Context, submitterID string, photo []byte, filenameHint string, lat, lon float64) (uint, error) {
	if len(photo) == 0 {
		return 0, ErrMissingPhoto
	}

	key, err := s.Store.Store(ctx, photo, filenameHint)
	if err != nil {
		return 0, err
	}

	category, err := s.Classifier.Classify(ctx, key)
	if err != nil {
		log.Printf("classify %s failed, recording as %s: %v", key, classifier.Unknown, err)
		category = classifier.Unknown
	}

	return s.Repo.Insert(submitterID, key, lat, lon, category)
}

// Resolve updates a report's status, storing and attaching a proof
// photo first when one is supplied. Status and proof photo land in a
// single repository update. Returns repository.ErrNotFound for an
// unknown id; in that case the stored proof blob is orphaned but no row
// changes.
func (s *ReportService) Resolve(ctx context.Context, id uint, status string, proof []byte, filenameHint string) error {
	var officePhoto *string
	if len(proof) > 0 {
		key, err := s.Store.Store(ctx, proof, filenameHint)
		if err != nil {
			return err
		}
		officePhoto = &key
	}
	return s.Repo.UpdateStatus(id, status, officePhoto)
}

// ViewForSubmitter returns the submitter's own reports, newest first.
func (s *ReportService) ViewForSubmitter(submitterID string) ([]models.Report, error) {
	return s.Repo.ListBySubmitter(submitterID)
}

// ViewAll returns every report, newest first.
func (s *ReportService) ViewAll() ([]models.Report, error) {
	return s.Repo.ListAll()
}
