package listing

// DisplayScore maps a zero-based position in the ordered result sequence to
// the score shown next to the listing. It decays by 5 per position from 120
// and never drops below 5. The score is presentational only; ordering is
// fixed upstream by the query.
func DisplayScore(position int) int64 {
	score := 120 - int64(position)*5
	if score < 5 {
		return 5
	}
	return score
}
