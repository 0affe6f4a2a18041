package similarity

// Explain describes a semantic score in words.
func Explain(semantic int) string {
	switch {
	case semantic > 90:
		return "The texts share nearly identical semantic meaning, despite any differences in wording."
	case semantic > 70:
		return "The texts convey very similar ideas and are likely discussing the same specific topic."
	case semantic > 40:
		return "The texts have some thematic connection but express different or conflicting ideas."
	default:
		return "The texts have significantly different meanings and appear to discuss unrelated topics."
	}
}
