package cache

import "strconv"

// RankingKey is the cache key for one posting's ranked-applicant list. It
// is invalidated whenever a screening pass touches the posting.
func RankingKey(postingID uint) string {
	return "rank:posting:" + strconv.FormatUint(uint64(postingID), 10)
}
