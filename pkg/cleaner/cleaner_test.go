package cleaner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

func testOptions() BatchOptions {
	return BatchOptions{
		ChangeoverType:       "干清",
		Locations:            []string{"CP Line 9", "CP Line 10"},
		TimeThresholdSeconds: 10800,
	}
}

func batchRecord(id string, end time.Time, elapsed float64) model.BatchRecord {
	e := elapsed
	planned := 3600.0
	return model.BatchRecord{
		ProcessOrderID: id,
		EndTime:        &end,
		Type:           "干清",
		Location:       "CP Line 9",
		ElapsedSeconds: &e,
		PlannedSeconds: &planned,
	}
}

func TestNewDataCleaner(t *testing.T) {
	t.Run("requires logger", func(t *testing.T) {
		_, err := NewDataCleaner(nil)
		assert.Error(t, err)
	})

	t.Run("creates cleaner", func(t *testing.T) {
		c, err := NewDataCleaner(zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestCleanBatchSteps(t *testing.T) {
	c, err := NewDataCleaner(zap.NewNop())
	require.NoError(t, err)

	end := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	missingID := batchRecord("", end, 3000)
	noEnd := batchRecord("PO-2", end, 3000)
	noEnd.EndTime = nil
	wetClean := batchRecord("PO-3", end, 3000)
	wetClean.Type = "湿清"
	wrongLine := batchRecord("PO-4", end, 3000)
	wrongLine.Location = "CP Line 01"
	tooSlow := batchRecord("PO-5", end, 20000)
	nilElapsed := batchRecord("PO-6", end, 0)
	nilElapsed.ElapsedSeconds = nil

	records := []model.BatchRecord{
		batchRecord("PO-1", end, 3000),
		missingID,
		batchRecord("PO-1", end.Add(time.Hour), 4000), // duplicate id, dropped
		noEnd,
		wetClean,
		wrongLine,
		tooSlow,
		nilElapsed,
	}

	cleaned, steps := c.CleanBatch(records, testOptions())

	require.Len(t, cleaned, 1)
	assert.Equal(t, "PO-1", cleaned[0].ProcessOrderID)
	assert.Equal(t, end, cleaned[0].EndTime)

	require.Len(t, steps, 9)
	assert.Equal(t, "Original rows: 8", steps[0])
	assert.Equal(t, "After removing null Process Order ID: 7", steps[1])
	assert.Equal(t, "After removing duplicates: 6", steps[2])
	assert.Equal(t, "After removing null End date/time: 5", steps[3])
	assert.Equal(t, "After filtering '干清' type: 4", steps[4])
	assert.Equal(t, "After filtering specified lines: 3", steps[5])
	assert.Equal(t, "After removing Time Elapsed > 10800: 1 (removed 2)", steps[6])
	assert.Equal(t, "Cleaning complete, final rows: 1", steps[7])
	assert.Equal(t, "Total removed: 7 rows", steps[8])
}

func TestCleanBatchDuplicateKeepsFirst(t *testing.T) {
	c, err := NewDataCleaner(zap.NewNop())
	require.NoError(t, err)

	end := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	first := batchRecord("PO-1", end, 1200)
	second := batchRecord("PO-1", end.Add(time.Hour), 2400)

	cleaned, _ := c.CleanBatch([]model.BatchRecord{first, second}, testOptions())

	require.Len(t, cleaned, 1)
	assert.Equal(t, 20.0, cleaned[0].ElapsedMinutes)
}

func TestCleanBatchConversion(t *testing.T) {
	c, err := NewDataCleaner(zap.NewNop())
	require.NoError(t, err)

	end := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rec := batchRecord("PO-1", end, 3601) // 60.0166… minutes
	diff := 90.0
	rec.DifferenceSeconds = &diff

	cleaned, _ := c.CleanBatch([]model.BatchRecord{rec}, testOptions())

	require.Len(t, cleaned, 1)
	assert.Equal(t, 60.02, cleaned[0].ElapsedMinutes)
	assert.Equal(t, 60.0, cleaned[0].PlannedMinutes)
	require.NotNil(t, cleaned[0].DifferenceMinutes)
	assert.Equal(t, 1.5, *cleaned[0].DifferenceMinutes)
}

func TestCleanBatchThresholdBoundary(t *testing.T) {
	c, err := NewDataCleaner(zap.NewNop())
	require.NoError(t, err)

	end := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	atLimit := batchRecord("PO-1", end, 10800)
	overLimit := batchRecord("PO-2", end, 10801)

	cleaned, _ := c.CleanBatch([]model.BatchRecord{atLimit, overLimit}, testOptions())

	require.Len(t, cleaned, 1)
	assert.Equal(t, "PO-1", cleaned[0].ProcessOrderID)
}

func TestCleanBatchEmptyResultIsNotAnError(t *testing.T) {
	c, err := NewDataCleaner(zap.NewNop())
	require.NoError(t, err)

	cleaned, steps := c.CleanBatch(nil, testOptions())

	assert.Empty(t, cleaned)
	assert.Equal(t, "Original rows: 0", steps[0])
}

func TestCleanBatchMissingPlannedBecomesZero(t *testing.T) {
	c, err := NewDataCleaner(zap.NewNop())
	require.NoError(t, err)

	end := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rec := batchRecord("PO-1", end, 3000)
	rec.PlannedSeconds = nil

	cleaned, _ := c.CleanBatch([]model.BatchRecord{rec}, testOptions())

	require.Len(t, cleaned, 1)
	assert.Zero(t, cleaned[0].PlannedMinutes)
	assert.Nil(t, cleaned[0].DifferenceMinutes)
}
