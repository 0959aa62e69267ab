package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"wsjf/pkg/schema"
)

// renderStars colors the star tier: 5 green, 4 cyan, 3 yellow, 2 plain.
func renderStars(stars int) string {
	s := strings.Repeat("*", stars)
	switch stars {
	case 5:
		return color.GreenString(s)
	case 4:
		return color.CyanString(s)
	case 3:
		return color.YellowString(s)
	}
	return s
}

func renderStage(stage schema.DeliveryStage) string {
	if stage.IsReady() {
		return color.GreenString(string(stage))
	}
	return color.YellowString(string(stage))
}

func renderRequirement(r schema.Requirement) string {
	return fmt.Sprintf("  %-16s %3d %-5s %6.1fd  %-20s %s",
		r.ID, r.DisplayScore, renderStars(r.Stars), r.EffortDays, renderStage(r.DeliveryStage), r.Name)
}

func renderPoolHeader(p schema.SprintPool) string {
	capacity := fmt.Sprintf("%.1f/%.1fd", p.CommittedDays(), p.AvailableDays())
	if p.CommittedDays() > p.AvailableDays() {
		capacity = color.RedString(capacity)
	}
	return fmt.Sprintf("%s  %s (%s to %s, %s)",
		color.New(color.Bold).Sprint(p.Name), p.ID, p.StartDate, p.EndDate, capacity)
}
