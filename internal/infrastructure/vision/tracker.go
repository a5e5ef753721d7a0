package vision

import "vision-inspector/internal/domain/entity"

// track — внутреннее состояние одного сопровождаемого объекта.
type track struct {
	id   int64
	box  entity.Box
	lost int
}

// IOUTracker назначает детекциям стабильные идентификаторы, жадно
// сопоставляя рамки соседних кадров по пересечению. Трек живёт, пока
// объект переоткрывается не реже чем раз в maxLost кадров; потерянный
// и вновь найденный объект получает новый идентификатор.
type IOUTracker struct {
	minIOU  float64
	maxLost int
	nextID  int64
	tracks  []*track
}

// NewIOUTracker создаёт трекер с порогом пересечения и сроком жизни трека.
func NewIOUTracker(minIOU float64, maxLost int) *IOUTracker {
	return &IOUTracker{
		minIOU:  minIOU,
		maxLost: maxLost,
		nextID:  1,
	}
}

// Update сопоставляет детекции кадра с активными треками и возвращает
// их с заполненными track ID. Порядок детекций сохраняется.
func (t *IOUTracker) Update(detections []entity.Detection) []entity.Detection {
	matchedTracks := make(map[*track]bool, len(t.tracks))
	matchedDets := make(map[int]bool, len(detections))

	// Жадное сопоставление: на каждом шаге берём пару с наибольшим IOU.
	for {
		var bestTrack *track
		bestDet := -1
		bestIOU := t.minIOU

		for _, tr := range t.tracks {
			if matchedTracks[tr] {
				continue
			}
			for i, det := range detections {
				if matchedDets[i] {
					continue
				}
				if overlap := iou(tr.box, det.Box); overlap >= bestIOU {
					bestIOU = overlap
					bestTrack = tr
					bestDet = i
				}
			}
		}

		if bestTrack == nil {
			break
		}

		matchedTracks[bestTrack] = true
		matchedDets[bestDet] = true
		bestTrack.box = detections[bestDet].Box
		bestTrack.lost = 0
		detections[bestDet].TrackID = bestTrack.id
		detections[bestDet].HasTrack = true
	}

	// Несопоставленные треки стареют и в конце концов удаляются.
	alive := t.tracks[:0]
	for _, tr := range t.tracks {
		if !matchedTracks[tr] {
			tr.lost++
		}
		if tr.lost <= t.maxLost {
			alive = append(alive, tr)
		}
	}
	t.tracks = alive

	// Несопоставленные детекции открывают новые треки.
	for i := range detections {
		if matchedDets[i] {
			continue
		}
		tr := &track{id: t.nextID, box: detections[i].Box}
		t.nextID++
		t.tracks = append(t.tracks, tr)
		detections[i].TrackID = tr.id
		detections[i].HasTrack = true
	}

	return detections
}

// iou возвращает отношение пересечения рамок к их объединению.
func iou(a, b entity.Box) float64 {
	interX1 := maxInt(a.X1, b.X1)
	interY1 := maxInt(a.Y1, b.Y1)
	interX2 := minInt(a.X2, b.X2)
	interY2 := minInt(a.Y2, b.Y2)

	if interX2 <= interX1 || interY2 <= interY1 {
		return 0
	}

	inter := float64((interX2 - interX1) * (interY2 - interY1))
	areaA := float64(a.Width() * a.Height())
	areaB := float64(b.Width() * b.Height())

	return inter / (areaA + areaB - inter)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
