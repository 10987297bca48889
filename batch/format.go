package batch

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case len(url) <= maxLen:
		return url
	case maxLen < 4:
		return url[:maxLen]
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatProgress renders a progress event as a single status line.
func FormatProgress(event ProgressEvent, width int) string {
	switch event.Type {
	case ProgressStarted:
		return fmt.Sprintf("scraping %d pages", event.Total)
	case ProgressCompleted:
		return fmt.Sprintf("[%d/%d] ok   %s", event.Completed, event.Total, TruncateURL(event.URL, width))
	case ProgressFailed:
		return fmt.Sprintf("[%d/%d] fail %s: %v", event.Completed, event.Total, TruncateURL(event.URL, width), event.Error)
	case ProgressFinished:
		return fmt.Sprintf("done %d/%d", event.Completed, event.Total)
	}
	return ""
}
