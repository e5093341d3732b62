package colour

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// KMeansExtractor implements colour extraction using k-means clustering in LAB space.
// Each cluster is reduced to the per-channel median of its members.
type KMeansExtractor struct {
	opts ExtractOptions
}

// NewKMeansExtractor creates a new KMeansExtractor.
func NewKMeansExtractor(opts ExtractOptions) (*KMeansExtractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &KMeansExtractor{opts: opts}, nil
}

// Extract extracts count colours from a pixel buffer. Colours are returned in
// cluster order with their relative weights (cluster sizes).
func (e *KMeansExtractor) Extract(pixels []RGB, count int) (*Palette, error) {
	if err := ValidateColourCount(count); err != nil {
		return nil, err
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: no pixels to extract from", ErrInsufficientData)
	}

	rng := rand.New(rand.NewSource(e.opts.Seed)) // #nosec G404 - reproducibility, not security
	sampled := samplePixels(pixels, e.opts.MaxSamples, rng)

	points, distinct := toLAB(sampled)
	if distinct < count {
		return nil, fmt.Errorf("%w: %d distinct colours sampled, %d requested", ErrInsufficientData, distinct, count)
	}

	best := e.cluster(points, count, rng)

	colours := make([]Colour, 0, count)
	weights := make([]float64, 0, count)
	for _, members := range best.members(points, count) {
		// Empty clusters are dropped and reported below.
		if len(members) == 0 {
			continue
		}
		colours = append(colours, NewColour(LABToRGB(medianLAB(members))))
		weights = append(weights, float64(len(members))/float64(len(points)))
	}

	if len(colours) < count {
		return nil, fmt.Errorf("%w: clustering produced %d of %d colours", ErrInsufficientData, len(colours), count)
	}

	return NewPaletteWithWeights(colours, weights), nil
}

// samplePixels draws a uniform sample of at most limit pixels without replacement.
func samplePixels(pixels []RGB, limit int, rng *rand.Rand) []RGB {
	if len(pixels) <= limit {
		return pixels
	}

	// Partial Fisher-Yates over an index permutation.
	idx := make([]int, len(pixels))
	for i := range idx {
		idx[i] = i
	}
	sampled := make([]RGB, limit)
	for i := 0; i < limit; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		sampled[i] = pixels[idx[i]]
	}
	return sampled
}

// toLAB converts pixels to LAB, caching repeated colours, and reports how many
// distinct colours were seen.
func toLAB(pixels []RGB) ([]LAB, int) {
	cache := make(map[RGB]LAB)
	points := make([]LAB, len(pixels))
	for i, p := range pixels {
		lab, ok := cache[p]
		if !ok {
			lab = RGBToLAB(p)
			cache[p] = lab
		}
		points[i] = lab
	}
	return points, len(cache)
}

// clustering is the outcome of one k-means run.
type clustering struct {
	assignments []int
	inertia     float64
}

// members groups points by their assigned cluster.
func (c clustering) members(points []LAB, k int) [][]LAB {
	groups := make([][]LAB, k)
	for i, a := range c.assignments {
		groups[a] = append(groups[a], points[i])
	}
	return groups
}

// cluster runs the configured number of restarts in parallel and keeps the run
// with the lowest inertia. Each restart owns an RNG seeded up front, so the
// result does not depend on goroutine scheduling.
func (e *KMeansExtractor) cluster(points []LAB, k int, rng *rand.Rand) clustering {
	seeds := make([]int64, e.opts.Restarts)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	runs := make([]clustering, e.opts.Restarts)
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			runs[i] = e.lloyd(points, k, rand.New(rand.NewSource(seed))) // #nosec G404
		}(i, seed)
	}
	wg.Wait()

	best := runs[0]
	for _, run := range runs[1:] {
		if run.inertia < best.inertia {
			best = run
		}
	}
	return best
}

// lloyd performs a single k-means run with k-means++ seeding.
func (e *KMeansExtractor) lloyd(points []LAB, k int, rng *rand.Rand) clustering {
	centroids := initialiseCentroidsKMeansPlusPlus(points, k, rng)
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < e.opts.MaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest, _ := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if changed == 0 {
			break
		}
		centroids = recalculateCentroids(points, assignments, centroids)
	}

	inertia := 0.0
	for i, p := range points {
		inertia += p.distanceSq(centroids[assignments[i]])
	}
	return clustering{assignments: assignments, inertia: inertia}
}

// initialiseCentroidsKMeansPlusPlus picks initial centroids with probability
// proportional to the squared distance from the nearest existing centroid.
func initialiseCentroidsKMeansPlusPlus(points []LAB, k int, rng *rand.Rand) []LAB {
	centroids := make([]LAB, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			_, d := nearestCentroid(p, centroids)
			distances[i] = d
			total += d
		}

		// Every point already coincides with a centroid.
		if total == 0 {
			centroids = append(centroids, points[rng.Intn(len(points))])
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target && d > 0 {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	return centroids
}

// nearestCentroid returns the index of the nearest centroid and the squared distance to it.
func nearestCentroid(p LAB, centroids []LAB) (int, float64) {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := p.distanceSq(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest, minDist
}

// recalculateCentroids moves every centroid to the mean of its members. An
// empty cluster is re-seeded with the point farthest from its own centroid.
func recalculateCentroids(points []LAB, assignments []int, previous []LAB) []LAB {
	k := len(previous)
	sums := make([]LAB, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].L += p.L
		sums[c].A += p.A
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]LAB, k)
	for i := 0; i < k; i++ {
		if counts[i] == 0 {
			continue
		}
		n := float64(counts[i])
		centroids[i] = LAB{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
	}

	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			continue
		}
		farthest, farthestDist := -1, 0.0
		for j, p := range points {
			if counts[assignments[j]] <= 1 {
				continue
			}
			if d := p.distanceSq(centroids[assignments[j]]); d > farthestDist {
				farthest, farthestDist = j, d
			}
		}
		if farthest < 0 {
			centroids[i] = previous[i]
			continue
		}
		counts[assignments[farthest]]--
		assignments[farthest] = i
		counts[i] = 1
		centroids[i] = points[farthest]
	}

	return centroids
}

// medianLAB returns the per-channel median of a non-empty set of LAB values.
func medianLAB(values []LAB) LAB {
	ls := make([]float64, len(values))
	as := make([]float64, len(values))
	bs := make([]float64, len(values))
	for i, v := range values {
		ls[i], as[i], bs[i] = v.L, v.A, v.B
	}
	return LAB{L: median(ls), A: median(as), B: median(bs)}
}

// median sorts xs in place and returns the middle value, averaging the two
// middle values for even lengths.
func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
