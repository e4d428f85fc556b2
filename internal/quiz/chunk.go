package quiz

// Chunking bounds for large text inputs. Inputs at or below ChunkThreshold
// characters are sent to the gateway in a single request.
const (
	ChunkThreshold = 16000
	ChunkSize      = 12000
	ChunkOverlap   = 600
)

// SplitText splits text into chunks of at most size characters with the
// given overlap between consecutive chunks. Text at or below size is
// returned as a single chunk.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		size = ChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// Apportion distributes total question slots across parts as evenly as
// possible, giving the remainder to the first chunks. The returned counts
// always sum to total.
func Apportion(total, parts int) []int {
	if parts <= 0 {
		return nil
	}
	counts := make([]int, parts)
	base := total / parts
	rem := total % parts
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
