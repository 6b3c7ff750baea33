package article

// Seed returns the built-in chronicle entries that ship with the site.
// They carry negative IDs so they can never collide with editor-created
// rows and always sort after them in the id-descending listings.
func Seed() []Article {
	return []Article{
		{
			ID:       -1,
			Title:    "Unexpected Migration Patterns Observed",
			Summary:  "Experts are puzzled by early migration of several songbird species.",
			Content:  "Recent data from bird observatories across North America indicates that several species of warblers and thrushes are migrating weeks earlier than usual. Climate scientists suggest this may be linked to unseasonably warm temperatures in their breeding grounds.",
			Author:   "Dr. Evelyn Wing",
			Date:     "October 15, 2025",
			ImageURL: "/images/news-andes.jpg",
		},
		{
			ID:       -2,
			Title:    "New Sanctuary Opens in the Andes",
			Summary:  "A protected area dedicated to the Andean Condor has been established.",
			Content:  "The \"Vuelo Alto\" sanctuary aims to protect the habitat of the majestic Andean Condor. This initiative, a collaboration between local governments and international conservation groups, secures over 50,000 acres of pristine mountain terrain.",
			Author:   "Carlos Pluma",
			Date:     "November 2, 2025",
			ImageURL: "/images/news-woodpecker.jpg",
		},
		{
			ID:       -3,
			Title:    "The Return of the Ivory-billed Woodpecker?",
			Summary:  "Unconfirmed sightings spark hope for the \"Lord God Bird\".",
			Content:  "A series of blurry photographs and audio recordings from the deep swamps of Arkansas have reignited the debate about the persistence of the Ivory-billed Woodpecker. Ornithologists are rushing to the site to verify the claims.",
			Author:   "Sarah Beaks",
			Date:     "December 10, 2025",
			ImageURL: "/images/news-migration.jpg",
		},
	}
}
