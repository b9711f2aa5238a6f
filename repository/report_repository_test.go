package repository

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fixmycity/api-go/models"
)

func testRepo(t *testing.T) *ReportRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "reports.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Report{}))
	return NewReportRepository(db)
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	repo := testRepo(t)

	var prev uint
	for i := 0; i < 5; i++ {
		id, err := repo.Insert("A1", "photo.jpg", 12.9, 77.6, "Pothole")
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestInsertDefaults(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Insert("A1", "key1.jpg", 12.9, 77.6, "Garbage")
	require.NoError(t, err)

	report, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, report.Status)
	assert.Nil(t, report.OfficePhoto)
	assert.Equal(t, "Garbage", report.Category)
	assert.Equal(t, "key1.jpg", report.UserPhoto)
	assert.Equal(t, 12.9, report.Latitude)
	assert.Equal(t, 77.6, report.Longitude)
}

func TestListBySubmitterScopesAndOrders(t *testing.T) {
	repo := testRepo(t)

	id1, err := repo.Insert("A1", "p1.jpg", 0, 0, "Pothole")
	require.NoError(t, err)
	_, err = repo.Insert("B2", "p2.jpg", 0, 0, "Garbage")
	require.NoError(t, err)
	id3, err := repo.Insert("A1", "p3.jpg", 0, 0, "Other")
	require.NoError(t, err)

	reports, err := repo.ListBySubmitter("A1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, id3, reports[0].ID)
	assert.Equal(t, id1, reports[1].ID)
	for _, r := range reports {
		assert.Equal(t, "A1", r.SubmitterID)
	}

	reports, err = repo.ListBySubmitter("nobody")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestListAllNewestFirst(t *testing.T) {
	repo := testRepo(t)

	id1, err := repo.Insert("A1", "p1.jpg", 0, 0, "Pothole")
	require.NoError(t, err)
	id2, err := repo.Insert("B2", "p2.jpg", 0, 0, "Garbage")
	require.NoError(t, err)

	reports, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, id2, reports[0].ID)
	assert.Equal(t, id1, reports[1].ID)
}

func TestUpdateStatusWithoutPhotoKeepsPrior(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Insert("A1", "p1.jpg", 0, 0, "Pothole")
	require.NoError(t, err)

	proof := "proof.jpg"
	require.NoError(t, repo.UpdateStatus(id, models.StatusInProgress, &proof))

	// Status-only update must not clear the attached photo
	require.NoError(t, repo.UpdateStatus(id, models.StatusResolved, nil))

	report, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, report.Status)
	require.NotNil(t, report.OfficePhoto)
	assert.Equal(t, "proof.jpg", *report.OfficePhoto)
}

func TestUpdateStatusWithPhotoSetsBoth(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Insert("A1", "p1.jpg", 0, 0, "Pothole")
	require.NoError(t, err)

	proof := "after.jpg"
	require.NoError(t, repo.UpdateStatus(id, models.StatusResolved, &proof))

	report, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, report.Status)
	require.NotNil(t, report.OfficePhoto)
	assert.Equal(t, "after.jpg", *report.OfficePhoto)
	assert.Equal(t, "p1.jpg", report.UserPhoto)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Insert("A1", "p1.jpg", 0, 0, "Pothole")
	require.NoError(t, err)

	err = repo.UpdateStatus(id+100, models.StatusResolved, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// Existing rows untouched
	report, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, report.Status)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetUnknownID(t *testing.T) {
	repo := testRepo(t)
	_, err := repo.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
