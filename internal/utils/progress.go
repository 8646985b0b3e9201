package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// DescClassifying labels the bar shown while documents are classified
const DescClassifying = "Classifying"

// NewProgressBar creates a counting progress bar over total items writing to w.
// The bar clears itself when finished so log lines that follow start clean.
func NewProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}
