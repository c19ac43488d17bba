package listing

// NoCityPlaceholder is shown when a listing has no city on record.
const NoCityPlaceholder = "城市未填写"

// ViewItem is the request-scoped projection of a listing prepared for
// rendering. It is rebuilt from rows on every request and never persisted.
type ViewItem struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	City       string   `json:"city"`
	Tags       []string `json:"tags"`
	TagSummary string   `json:"tag_summary"`
	HasTags    bool     `json:"has_tags"`
	Score      int64    `json:"score"`
}

// NewViewItem projects a decoded row at the given position of the ordered
// result sequence. The row is assumed Valid; callers filter first.
func NewViewItem(row Row, position int) ViewItem {
	city := NoCityPlaceholder
	if row.City != nil && *row.City != "" {
		city = *row.City
	}

	tags := ParseTags(row.Tags)

	return ViewItem{
		ID:         row.ID,
		Title:      row.Title,
		City:       city,
		Tags:       tags,
		TagSummary: SummarizeTags(tags),
		HasTags:    len(tags) > 0,
		Score:      DisplayScore(position),
	}
}
