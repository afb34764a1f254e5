package viewport

// ComputedAspect is a PageAspect with unknown ratios replaced by an estimate.
type ComputedAspect struct {
	Aspect   float64
	Measured bool
	Note     *Note
}

// AverageAspect returns the mean of all known aspects, or fallback when no
// page has been measured yet.
func AverageAspect(aspects []PageAspect, fallback float64) float64 {
	sum := 0.0
	count := 0
	for _, a := range aspects {
		if a.Known {
			sum += a.Aspect
			count++
		}
	}
	if count == 0 {
		return fallback
	}
	return sum / float64(count)
}

// ComputeAspects fills unknown aspects with the average of the known ones.
func ComputeAspects(aspects []PageAspect, fallback float64) []ComputedAspect {
	avg := AverageAspect(aspects, fallback)
	out := make([]ComputedAspect, len(aspects))
	for i, a := range aspects {
		out[i] = ComputedAspect{Aspect: avg, Measured: a.Known, Note: a.Note}
		if a.Known {
			out[i].Aspect = a.Aspect
		}
	}
	return out
}

// HeightOfAspect is the pixel height of a page with the given aspect,
// including its top and bottom margins.
func HeightOfAspect(aspect, width, verticalPageMargin float64) float64 {
	return width*aspect + 2*verticalPageMargin
}

// Heights returns one pixel height per page.
func Heights(width, verticalPageMargin float64, computed []ComputedAspect) []float64 {
	heights := make([]float64, len(computed))
	for i, c := range computed {
		heights[i] = HeightOfAspect(c.Aspect, width, verticalPageMargin)
	}
	return heights
}

// OverallHeight is the full scrollable height: both document margins plus
// every page.
func OverallHeight(heights []float64, verticalDocumentMargin float64) float64 {
	sum := 2 * verticalDocumentMargin
	for _, h := range heights {
		sum += h
	}
	return sum
}

func sumHeights(heights []float64, n int) float64 {
	if n > len(heights) {
		n = len(heights)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += heights[i]
	}
	return sum
}
