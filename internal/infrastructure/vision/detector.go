//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

const (
	defaultNMSThreshold = 0.45
	trackerMinIOU       = 0.3
	trackerMaxLost      = 15
)

// YOLODetector запускает ONNX-модель детекции через DNN-модуль OpenCV
// и назначает найденным объектам стабильные track ID.
type YOLODetector struct {
	net          gocv.Net
	names        []string
	threshold    float32
	nmsThreshold float32
	workingW     int
	workingH     int
	tracker      *IOUTracker
	mu           sync.Mutex
}

// NewYOLODetector загружает модель и готовит трекер.
func NewYOLODetector(modelPath string, names []string, threshold float64, workingW, workingH int) (*YOLODetector, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("load model %s: empty network", modelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &YOLODetector{
		net:          net,
		names:        names,
		threshold:    float32(threshold),
		nmsThreshold: defaultNMSThreshold,
		workingW:     workingW,
		workingH:     workingH,
		tracker:      NewIOUTracker(trackerMinIOU, trackerMaxLost),
	}, nil
}

// DetectAndTrack уменьшает кадр до рабочего разрешения, прогоняет его
// через сеть и возвращает детекции с track ID. Рамки остаются в
// рабочем разрешении: обратное масштабирование — забота вызывающего.
func (d *YOLODetector) DetectAndTrack(ctx context.Context, frame port.Frame) ([]entity.Detection, error) {
	_ = ctx
	mf, ok := frame.(*MatFrame)
	if !ok {
		return nil, errors.New("unsupported frame type")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(*mf.Mat(), &resized, image.Pt(d.workingW, d.workingH), 0, 0, gocv.InterpolationLinear)

	blob := gocv.BlobFromImage(resized, 1.0/255.0, image.Pt(d.workingW, d.workingH), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	output := d.net.Forward("")
	defer output.Close()

	return d.tracker.Update(d.decode(output)), nil
}

// decode разбирает выход YOLOv8: матрица 1x(4+классы)xN, столбец на
// кандидата, координаты центра и размеры в пикселях рабочего кадра.
func (d *YOLODetector) decode(output gocv.Mat) []entity.Detection {
	dims := output.Size()
	if len(dims) != 3 {
		return nil
	}
	channels, candidates := dims[1], dims[2]

	rows := output.Reshape(1, channels)
	defer rows.Close()

	var rects []image.Rectangle
	var scores []float32
	var classIDs []int

	for j := 0; j < candidates; j++ {
		best := -1
		var bestScore float32
		for i := 4; i < channels; i++ {
			if score := rows.GetFloatAt(i, j); score > bestScore {
				bestScore = score
				best = i - 4
			}
		}
		if bestScore < d.threshold || best < 0 || best >= len(d.names) {
			continue
		}

		cx := rows.GetFloatAt(0, j)
		cy := rows.GetFloatAt(1, j)
		w := rows.GetFloatAt(2, j)
		h := rows.GetFloatAt(3, j)

		rects = append(rects, image.Rect(int(cx-w/2), int(cy-h/2), int(cx+w/2), int(cy+h/2)))
		scores = append(scores, bestScore)
		classIDs = append(classIDs, best)
	}

	indices := gocv.NMSBoxes(rects, scores, d.threshold, d.nmsThreshold)
	detections := make([]entity.Detection, 0, len(indices))
	for _, idx := range indices {
		r := rects[idx]
		detections = append(detections, entity.Detection{
			Box:        entity.Box{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
			Label:      d.names[classIDs[idx]],
			Confidence: float64(scores[idx]),
		})
	}

	return detections
}

// Close освобождает ресурсы модели.
func (d *YOLODetector) Close() error {
	return d.net.Close()
}

// Проверка реализации интерфейса
var _ port.Detector = (*YOLODetector)(nil)
