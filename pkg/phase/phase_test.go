package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

func activity(phase, task, operator, po string, minutes float64) model.CleanedActivity {
	return model.CleanedActivity{
		PhaseName:       phase,
		TaskDescription: task,
		Operator:        operator,
		PONumber:        po,
		DurationMinutes: minutes,
	}
}

func TestAnalyzeKeepsPhaseOrderAndOmitsEmpty(t *testing.T) {
	// Records for Cleaning and Line Configuration only, supplied out of
	// order. Summaries come back in canonical phase order without the two
	// missing phases.
	records := []model.CleanedActivity{
		activity("产线配置", "install format parts", "op-a", "PO-1", 12),
		activity("清场", "wipe conveyor", "op-b", "PO-1", 5),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Cleaning", summaries[0].Phase)
	assert.Equal(t, "Line Configuration", summaries[1].Phase)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	assert.Empty(t, Analyze(nil))
}

func TestAnalyzeIgnoresUnknownPhase(t *testing.T) {
	records := []model.CleanedActivity{
		activity("维修", "fix guard rail", "op-a", "PO-1", 30),
	}

	assert.Empty(t, Analyze(records))
}

func TestSummarizeDurationStatistics(t *testing.T) {
	records := []model.CleanedActivity{
		activity("清场", "wipe conveyor", "op-a", "PO-1", 4),
		activity("清场", "wipe conveyor", "op-a", "PO-2", 6),
		activity("清场", "clear hopper", "op-b", "PO-1", 8),
		activity("清场", "clear hopper", "op-b", "PO-2", 10),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "Cleaning", s.Phase)
	assert.InDelta(t, 7.0, s.AvgMinutes, 1e-9)
	assert.InDelta(t, 4.0, s.MinMinutes, 1e-9)
	assert.InDelta(t, 10.0, s.MaxMinutes, 1e-9)
	// Sample std of {4,6,8,10}: sqrt(20/3).
	assert.InDelta(t, 2.581988897, s.StdMinutes, 1e-6)
	assert.Equal(t, 4, s.RecordCount)
	assert.Equal(t, 2, s.ActivityCount)
}

func TestSummarizeSinglePointStdIsZero(t *testing.T) {
	records := []model.CleanedActivity{
		activity("切换", "swap tooling", "op-a", "PO-1", 15),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].StdMinutes)
}

func TestSummarizeTaskAndOperatorRanking(t *testing.T) {
	records := []model.CleanedActivity{
		activity("切换", "swap tooling", "op-slow", "PO-1", 20),
		activity("切换", "swap tooling", "op-slow", "PO-2", 30),
		activity("切换", "adjust guides", "op-fast", "PO-1", 5),
		activity("切换", "adjust guides", "op-fast", "PO-2", 7),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 1)
	s := summaries[0]

	// Slowest task first.
	require.Len(t, s.TopTasks, 2)
	assert.Equal(t, "swap tooling", s.TopTasks[0].Name)
	assert.InDelta(t, 25.0, s.TopTasks[0].Mean, 1e-9)
	assert.Equal(t, 2, s.TopTasks[0].Count)
	assert.Equal(t, "adjust guides", s.TopTasks[1].Name)

	// Most efficient operator first.
	require.Len(t, s.TopOperators, 2)
	assert.Equal(t, "op-fast", s.TopOperators[0].Name)
	assert.InDelta(t, 6.0, s.TopOperators[0].Mean, 1e-9)
	assert.Equal(t, "op-slow", s.TopOperators[1].Name)
}

func TestSummarizeRankingTieBreaksAlphabetically(t *testing.T) {
	records := []model.CleanedActivity{
		activity("清场", "task-b", "op-b", "PO-1", 10),
		activity("清场", "task-a", "op-a", "PO-1", 10),
		activity("清场", "task-c", "op-c", "PO-1", 10),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "task-a", s.TopTasks[0].Name)
	assert.Equal(t, "task-b", s.TopTasks[1].Name)
	assert.Equal(t, "task-c", s.TopTasks[2].Name)
	assert.Equal(t, "op-a", s.TopOperators[0].Name)
}

func TestSummarizeTruncatesLeaderboards(t *testing.T) {
	records := []model.CleanedActivity{
		activity("清场", "t1", "o1", "PO-1", 1),
		activity("清场", "t2", "o2", "PO-1", 2),
		activity("清场", "t3", "o3", "PO-1", 3),
		activity("清场", "t4", "o4", "PO-1", 4),
		activity("清场", "t5", "o5", "PO-1", 5),
		activity("清场", "t6", "o6", "PO-1", 6),
		activity("清场", "t7", "o7", "PO-1", 7),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Len(t, s.TopTasks, 5)
	assert.Len(t, s.TopOperators, 5)
	assert.Equal(t, 7, s.ActivityCount)
	// The two fastest tasks fall off the slowest-first board.
	assert.Equal(t, "t7", s.TopTasks[0].Name)
	assert.Equal(t, "t3", s.TopTasks[4].Name)
	// The two slowest operators fall off the fastest-first board.
	assert.Equal(t, "o1", s.TopOperators[0].Name)
	assert.Equal(t, "o5", s.TopOperators[4].Name)
}

func TestSummarizeExtremeRecords(t *testing.T) {
	records := []model.CleanedActivity{
		activity("清场", "wipe conveyor", "op-a", "PO-1", 6),
		activity("清场", "clear hopper", "op-b", "PO-2", 2),
		activity("清场", "sanitize belt", "op-c", "PO-3", 14),
		// Duplicate of the minimum: the first occurrence wins.
		activity("清场", "clear drain", "op-d", "PO-4", 2),
	}

	summaries := Analyze(records)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, 2.0, s.Fastest.Minutes)
	assert.Equal(t, "op-b", s.Fastest.Operator)
	assert.Equal(t, "clear hopper", s.Fastest.Task)
	assert.Equal(t, "PO-2", s.Fastest.Batch)
	assert.Equal(t, 14.0, s.Slowest.Minutes)
	assert.Equal(t, "op-c", s.Slowest.Operator)
}

func TestGroupStatsRoundsAggregates(t *testing.T) {
	records := []model.CleanedActivity{
		activity("清场", "wipe conveyor", "op-a", "PO-1", 1.006),
		activity("清场", "wipe conveyor", "op-a", "PO-2", 2.006),
	}

	groups := groupStats(records, func(r model.CleanedActivity) string { return r.TaskDescription })

	require.Len(t, groups, 1)
	assert.InDelta(t, 1.51, groups[0].Mean, 1e-9)
	assert.InDelta(t, 1.01, groups[0].Min, 1e-9)
	assert.InDelta(t, 2.01, groups[0].Max, 1e-9)
}
