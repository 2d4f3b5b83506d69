package update

import (
	"fmt"

	"github.com/varshitha1106/SmartStudyPlanner/internal/views"
)

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	min := totalSec / 60
	sec := totalSec % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func renderMarkdown(md string, dark bool) string {
	return views.RenderMarkdown(md, dark)
}
