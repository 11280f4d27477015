package signals

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
)

const (
	hueBins = 32
	satBins = 32
	// motionGridSize is the side of the downsampled luma grid used for
	// frame-to-frame motion; fixed size keeps the diff well-defined even
	// when source frames vary in resolution.
	motionGridSize = 64
)

// frameMetrics holds the per-image measurements of one decoded frame.
type frameMetrics struct {
	contrast   float64
	saturation float64
	histogram  []float64
	lumaGrid   []float64
}

func decodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", path, err)
	}
	return img, nil
}

// measureFrame computes contrast, saturation, the hue/saturation histogram
// fingerprint, and the downsampled luma grid in a single pass over pixels.
func measureFrame(img image.Image) frameMetrics {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return frameMetrics{}
	}

	luma := make([]float64, w*h)
	hist := make([]float64, hueBins*satBins)
	var satSum float64

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)

			luma[y*w+x] = 0.299*rf + 0.587*gf + 0.114*bf

			hue, sat := hueSaturation(rf, gf, bf)
			satSum += sat
			hBin := int(hue / 360.0 * hueBins)
			if hBin >= hueBins {
				hBin = hueBins - 1
			}
			sBin := int(sat * satBins)
			if sBin >= satBins {
				sBin = satBins - 1
			}
			hist[hBin*satBins+sBin]++
		}
	}

	pixels := float64(w * h)
	for i := range hist {
		hist[i] /= pixels
	}

	return frameMetrics{
		contrast:   laplacianVariance(luma, w, h),
		saturation: 255.0 * satSum / pixels,
		histogram:  hist,
		lumaGrid:   downsample(luma, w, h, motionGridSize),
	}
}

// hueSaturation converts an 8-bit RGB triple to hue degrees [0,360) and
// saturation [0,1].
func hueSaturation(r, g, b float64) (float64, float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	var sat float64
	if maxC > 0 {
		sat = delta / maxC
	}
	if delta == 0 {
		return 0, sat
	}

	var hue float64
	switch maxC {
	case r:
		hue = math.Mod((g-b)/delta, 6)
	case g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue, sat
}

// laplacianVariance measures edge density: the variance of the 4-neighbor
// Laplacian over the luma plane. Sharp, busy frames score high; flat or
// blurry frames score near zero.
func laplacianVariance(luma []float64, w, h int) float64 {
	if w < 3 || h < 3 {
		return 0
	}
	var sum, sumSq float64
	n := float64((w - 2) * (h - 2))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			lap := luma[(y-1)*w+x] + luma[(y+1)*w+x] + luma[y*w+x-1] + luma[y*w+x+1] - 4*luma[y*w+x]
			sum += lap
			sumSq += lap * lap
		}
	}
	mean := sum / n
	return sumSq/n - mean*mean
}

// downsample reduces a luma plane to a size x size grid of cell means.
func downsample(luma []float64, w, h, size int) []float64 {
	grid := make([]float64, size*size)
	counts := make([]float64, size*size)
	for y := 0; y < h; y++ {
		gy := y * size / h
		for x := 0; x < w; x++ {
			gx := x * size / w
			grid[gy*size+gx] += luma[y*w+x]
			counts[gy*size+gx]++
		}
	}
	for i := range grid {
		if counts[i] > 0 {
			grid[i] /= counts[i]
		}
	}
	return grid
}

// meanAbsDiff is the motion proxy: mean absolute luminance difference
// between two downsampled grids.
func meanAbsDiff(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a))
}

// histogramCorrelation computes the Pearson correlation between two
// histograms, the similarity measure behind scene uniqueness.
func histogramCorrelation(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	n := float64(len(a))
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var num, denA, denB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		num += da * db
		denA += da * da
		denB += db * db
	}
	if denA == 0 || denB == 0 {
		return 0
	}
	return num / math.Sqrt(denA*denB)
}
