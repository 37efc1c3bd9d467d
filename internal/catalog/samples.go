package catalog

func str(s string) *string { return &s }

// samples backs every list operation when the API is unreachable.
var samples = []Item{
	{
		ID:           1,
		Title:        "The Matrix",
		Overview:     "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		PosterPath:   str("/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"),
		BackdropPath: str("/fNG7i7RqMErkcqhohV2a6cV1Ehy.jpg"),
		VoteAverage:  8.7,
		ReleaseDate:  str("1999-03-30"),
		Kind:         Movie,
		GenreIDs:     []int{28, 878},
	},
	{
		ID:           2,
		Title:        "Inception",
		Overview:     "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea.",
		PosterPath:   str("/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"),
		BackdropPath: str("/s3TBrRGB1iav7gFOCNx3H31MoES.jpg"),
		VoteAverage:  8.4,
		ReleaseDate:  str("2010-07-16"),
		Kind:         Movie,
		GenreIDs:     []int{28, 878, 53},
	},
	{
		ID:           3,
		Title:        "The Dark Knight",
		Overview:     "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest tests.",
		PosterPath:   str("/qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
		BackdropPath: str("/hkBaDkMWbLaf8B1lsWsKX7Ew3Xq.jpg"),
		VoteAverage:  9.0,
		ReleaseDate:  str("2008-07-18"),
		Kind:         Movie,
		GenreIDs:     []int{28, 80, 18},
	},
	{
		ID:           4,
		Title:        "Interstellar",
		Overview:     "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		PosterPath:   str("/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"),
		BackdropPath: str("/xu9zaAevzQ5nnrsXN6JcahLnG4i.jpg"),
		VoteAverage:  8.6,
		ReleaseDate:  str("2014-11-07"),
		Kind:         Movie,
		GenreIDs:     []int{12, 18, 878},
	},
	{
		ID:           5,
		Title:        "Breaking Bad",
		Overview:     "A high school chemistry teacher turned methamphetamine producer partners with a former student.",
		PosterPath:   str("/ggFHVNu6YYI5L9pCfOacjizRGt.jpg"),
		BackdropPath: str("/tsRy63Mu5cu8etL1X7ZLyf7UP1M.jpg"),
		VoteAverage:  9.5,
		ReleaseDate:  str("2008-01-20"),
		Kind:         TV,
		GenreIDs:     []int{18, 80},
	},
	{
		ID:           6,
		Title:        "Stranger Things",
		Overview:     "When a young boy vanishes, a small town uncovers a mystery involving secret experiments and terrifying supernatural forces.",
		PosterPath:   str("/x2LSRK2Cm7MZhjluni1msVJ3wDF.jpg"),
		BackdropPath: str("/56v2KjBlU4XaOv9rVYEQypROD7P.jpg"),
		VoteAverage:  8.6,
		ReleaseDate:  str("2016-07-15"),
		Kind:         TV,
		GenreIDs:     []int{18, 9648, 878},
	},
}

// Samples returns a copy of the built-in sample set.
func Samples() []Item {
	return filterSamples(func(Item) bool { return true })
}

func filterSamples(keep func(Item) bool) []Item {
	out := []Item{}
	for _, it := range samples {
		if keep(it) {
			it.GenreIDs = append([]int(nil), it.GenreIDs...)
			out = append(out, it)
		}
	}
	return out
}
