package admin

import "github.com/featherworks/aviary/internal/catalog/species"

// groupFallback is the bucket label the console shows for species without
// a category or family. The public site uses "Other" for the same case.
const groupFallback = "Uncategorized"

// GroupForDisplay partitions species into the console's collapsible
// buckets: category when set, else family, else "Uncategorized". Buckets
// are sorted alphabetically. Pure function of its input.
func GroupForDisplay(list []*species.Species) []species.Group {
	return species.GroupAll(list, groupFallback)
}
