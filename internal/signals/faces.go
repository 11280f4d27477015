package signals

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

const (
	faceMinSize     = 30
	faceMaxSize     = 1200
	faceShiftFactor = 0.1
	faceScaleFactor = 1.1
	faceQThreshold  = 5.0
	faceIoU         = 0.2
)

// FaceDetector reports whether a frame contains at least one face.
// A nil *PigoDetector is valid and reports no faces, so a missing cascade
// file degrades the face signal to zero instead of failing the run.
type FaceDetector interface {
	HasFace(img image.Image) bool
}

// PigoDetector wraps a pigo cascade classifier.
type PigoDetector struct {
	classifier *pigo.Pigo
}

// LoadFaceDetector reads a pigo facefinder cascade from disk.
func LoadFaceDetector(cascadePath string) (*PigoDetector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("read face cascade: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpack face cascade %s: %w", cascadePath, err)
	}
	return &PigoDetector{classifier: classifier}, nil
}

// HasFace runs the cascade over the frame and reports whether any clustered
// detection clears the quality threshold.
func (d *PigoDetector) HasFace(img image.Image) bool {
	if d == nil || d.classifier == nil {
		return false
	}
	bounds := img.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()
	if cols < faceMinSize || rows < faceMinSize {
		return false
	}

	params := pigo.CascadeParams{
		MinSize:     faceMinSize,
		MaxSize:     faceMaxSize,
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(img),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	detections := d.classifier.RunCascade(params, 0.0)
	detections = d.classifier.ClusterDetections(detections, faceIoU)
	for _, det := range detections {
		if det.Q >= faceQThreshold {
			return true
		}
	}
	return false
}
