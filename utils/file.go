package utils

import "fmt"

// FormatSizeLabel renders a file size in KB with two decimals, the label shown
// next to every document in the knowledge base list.
func FormatSizeLabel(size int64) string {
	return fmt.Sprintf("%.2f KB", float64(size)/1024)
}
