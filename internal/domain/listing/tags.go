package listing

import "strings"

// NoTagsPlaceholder is shown when a listing carries no usable tags.
const NoTagsPlaceholder = "暂无标签"

// ParseTags splits the denormalized comma-separated tag column into trimmed,
// non-empty labels. Relative order is preserved and duplicates are kept.
func ParseTags(raw *string) []string {
	if raw == nil {
		return []string{}
	}

	tags := make([]string, 0)
	for _, segment := range strings.Split(*raw, ",") {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		tags = append(tags, trimmed)
	}
	return tags
}

// SummarizeTags joins tags for display, falling back to the placeholder.
func SummarizeTags(tags []string) string {
	if len(tags) == 0 {
		return NoTagsPlaceholder
	}
	return strings.Join(tags, ", ")
}
