package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"chorus/internal/pipeline"
	"chorus/internal/segment"
)

// renderSpeakerSummary formats per-speaker word counts and speech time as a
// rounded table, one row per speaker in order of first appearance. Returns ""
// when there is nothing to summarize.
func renderSpeakerSummary(result *pipeline.Result) string {
	if result == nil || len(result.Speakers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Speaker", "Words", "Speech Time"})
	for _, stat := range result.Speakers {
		tw.AppendRow(table.Row{
			stat.Speaker,
			fmt.Sprintf("%d", stat.Words),
			segment.FormatTimestamp(stat.Seconds),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
