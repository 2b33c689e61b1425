package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Topics are suggestions shown to users. The list is static and independent
// of which topics the fallback table covers.
var Topics = []string{
	"Historical Events",
	"World Geography",
	"Science and Technology",
	"Literature and Authors",
	"Art and Artists",
	"Mathematics",
	"Space and Astronomy",
	"Ancient Civilizations",
	"Modern Politics",
	"Environmental Science",
	"Music History",
	"Sports Legends",
	"Famous Inventors",
	"World Religions",
	"Oceanography",
}

var Difficulties = []string{"easy", "medium", "hard"}

// SearchTopics returns the topics matching query, case-insensitively and
// tolerating skipped characters. Results keep the catalog order.
func SearchTopics(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), Topics...)
	}

	matches := fuzzy.FindFold(query, Topics)
	return lo.Filter(Topics, func(topic string, _ int) bool {
		return lo.Contains(matches, topic)
	})
}

func IsKnownDifficulty(d string) bool {
	return lo.Contains(Difficulties, strings.ToLower(d))
}
