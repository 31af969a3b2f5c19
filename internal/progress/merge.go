// Package progress maintains the project-level progress document: one
// marker-delimited region holding a titled subsection per agent role,
// merged idempotently as roles run.
package progress

import "strings"

// Markers delimits the managed region of a document. Content outside the
// markers is never modified.
type Markers struct {
	Start string
	End   string
}

// subsectionPrefix introduces every role subsection inside the region.
const subsectionPrefix = "### "

// MergeSection merges a subsection into the marker-delimited region of doc
// and returns the new document. headerVariants are the subsection header
// lines that identify an existing entry for the same key (one per status
// glyph). If a matching subsection exists it is replaced in place, keeping
// its position; otherwise the entry is appended after the last subsection.
// If either marker is missing, or the end marker precedes the start marker,
// the entry is appended at the end of the document and region tracking is
// abandoned for this document.
//
// The transform is pure: no filesystem or clock access.
func MergeSection(doc string, markers Markers, headerVariants []string, entry string) string {
	startIdx := strings.Index(doc, markers.Start)
	endIdx := strings.Index(doc, markers.End)
	if startIdx == -1 || endIdx == -1 {
		return doc + "\n\n" + entry
	}

	regionStart := startIdx + len(markers.Start)
	if endIdx < regionStart {
		return doc + "\n\n" + entry
	}
	region := doc[regionStart:endIdx]

	return doc[:regionStart] + mergeRegion(region, headerVariants, entry) + doc[endIdx:]
}

// mergeRegion performs the replace-or-append on the region body. Lines of
// untouched subsections pass through verbatim; a replaced subsection's
// lines are dropped up to the next subsection header or end of region.
func mergeRegion(region string, headerVariants []string, entry string) string {
	entry = strings.TrimSpace(entry)

	if !containsAnyHeader(region, headerVariants) {
		trimmed := strings.TrimRight(region, "\n")
		return trimmed + "\n\n" + entry + "\n"
	}

	var out []string
	skipping := false
	for _, line := range strings.Split(region, "\n") {
		switch {
		case matchesAnyHeader(line, headerVariants):
			out = append(out, entry)
			skipping = true
		case skipping && strings.HasPrefix(line, subsectionPrefix):
			skipping = false
			out = append(out, line)
		case !skipping:
			out = append(out, line)
		}
	}

	merged := strings.Join(out, "\n")
	if !strings.HasSuffix(merged, "\n") {
		merged += "\n"
	}
	return merged
}

func containsAnyHeader(region string, headerVariants []string) bool {
	for _, line := range strings.Split(region, "\n") {
		if matchesAnyHeader(line, headerVariants) {
			return true
		}
	}
	return false
}

func matchesAnyHeader(line string, headerVariants []string) bool {
	for _, header := range headerVariants {
		if strings.HasPrefix(line, header) {
			return true
		}
	}
	return false
}
