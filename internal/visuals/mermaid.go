// Package visuals renders planning data as Mermaid charts, ready to embed in
// markdown or an MCP response.
package visuals

import (
	"fmt"
	"math"
	"strings"

	"github.com/michael-petrov-cpoms/velociraptor/internal/planning"
)

// GenerateVelocityChart creates a Mermaid xychart-beta of per-sprint
// throughput with the rolling average overlaid as a second line. Sprints are
// plotted oldest to newest; unusable sprints are skipped, matching their
// exclusion from the average.
func GenerateVelocityChart(report planning.VelocityReport) string {
	var perDay []float64
	// report.Sprints is newest first; reverse for a left-to-right timeline.
	for i := len(report.Sprints) - 1; i >= 0; i-- {
		if report.Sprints[i].Usable {
			perDay = append(perDay, report.Sprints[i].PerDay)
		}
	}
	if len(perDay) == 0 || !report.HasData {
		return ""
	}

	var labels []string
	var values []string
	var averages []string
	for i, v := range perDay {
		labels = append(labels, fmt.Sprintf("%d", i+1))
		values = append(values, fmt.Sprintf("%.2f", v))
		averages = append(averages, fmt.Sprintf("%.2f", report.Throughput))
	}

	maxY := report.Throughput * 1.2
	for _, v := range perDay {
		if v*1.1 > maxY {
			maxY = v * 1.1
		}
	}
	if maxY < 1 {
		maxY = 1
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Velocity: %s\"\n", report.TeamName))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Points per Day\" 0 --> %d\n", int(math.Ceil(maxY))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(averages, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateCapacityChart creates a Mermaid bar chart contrasting the
// recommended commitment with the full-capacity figure for one plan.
func GenerateCapacityChart(report planning.PlanReport) string {
	if !report.HasData || report.Plan == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Next Sprint: %s (%.1f%% capacity)\"\n",
		report.Velocity.TeamName, report.Plan.CapacityRatio))
	sb.WriteString("    x-axis [\"Recommended\", \"Full Capacity\"]\n")
	sb.WriteString(fmt.Sprintf("    y-axis \"Points\" 0 --> %d\n", report.Plan.FullCapacity+1))
	sb.WriteString(fmt.Sprintf("    bar [%d, %d]\n", report.Plan.Recommended, report.Plan.FullCapacity))
	sb.WriteString("```")
	return sb.String()
}
