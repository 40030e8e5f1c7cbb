package logger

// CollectErrorEntriesExported exposes collectErrorEntries for tests.
func CollectErrorEntriesExported(err error) []ErrorEntry {
	return collectErrorEntries(err)
}

// FormatErrorEntriesExported exposes formatErrorEntries for tests.
func FormatErrorEntriesExported(entries []ErrorEntry) string {
	return formatErrorEntries(entries)
}
