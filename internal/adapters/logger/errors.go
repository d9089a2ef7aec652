package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager is implemented by zerr errors to report their own message without the chain.
type messager interface {
	Message() string
}

// metadataCarrier is implemented by zerr errors carrying key/value metadata.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr levels contribute their own message
// and metadata. The first standard error ends the walk with its full message.
// Levels with an empty message only carry metadata and attach it to the next entry.
// Joined errors are rendered in order, the walk continuing with the last of them.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			errs := joined.Unwrap()
			if len(errs) == 0 {
				break
			}
			for _, e := range errs[:len(errs)-1] {
				for _, entry := range collectErrorEntries(e) {
					entries = append(entries, ErrorEntry{
						Message:  entry.Message,
						Metadata: mergeMetadata(pending, entry.Metadata),
					})
					pending = nil
				}
			}
			current = errs[len(errs)-1]
			continue
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var meta map[string]any
		if c, ok := current.(metadataCarrier); ok {
			meta = c.Metadata()
		}

		if m.Message() == "" {
			pending = mergeMetadata(pending, meta)
		} else {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMetadata(pending, meta)})
			pending = nil
		}

		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if a == nil {
		return b
	}
	for k, v := range b {
		a[k] = v
	}
	return a
}

// formatErrorEntries renders entries as "Error:" followed by an indented "Caused by:" list.
// Metadata is printed below its message with keys sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			head, indent = "    → ", "      "
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
