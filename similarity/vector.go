package similarity

import "math"

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. A zero vector stays a zero vector.
func NormalizeVector(v []float32) []float32 {
	result := make([]float32, len(v))

	var magnitude float64
	for _, val := range v {
		magnitude += float64(val) * float64(val)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 {
		return result
	}

	for i, val := range v {
		result[i] = float32(float64(val) / magnitude)
	}
	return result
}

// Cosine returns the cosine similarity of a and b, or 0 when either has zero
// length. Extra components of the longer vector are ignored.
func Cosine(a, b []float32) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Percent converts a cosine similarity into a score between 0 and 100.
// Negative similarities score 0.
func Percent(similarity float64) int {
	if math.IsNaN(similarity) {
		return 0
	}
	score := math.Round(similarity * 100)
	return int(max(0, min(100, score)))
}
