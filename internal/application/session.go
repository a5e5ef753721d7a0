package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

// SessionConfig — статические параметры одного сеанса инспекции.
type SessionConfig struct {
	Flagged       entity.ClassSet // классы, требующие сохранения снимка
	Palette       *entity.Palette // цвета отрисовки по меткам
	WorkingWidth  int             // рабочее разрешение детектора по горизонтали
	WorkingHeight int             // рабочее разрешение детектора по вертикали
}

// SessionService управляет сеансом инспекции: читает кадры, запускает
// детектор, отрисовывает результаты и сохраняет снимок при первом
// появлении каждого помеченного объекта.
type SessionService struct {
	source    port.FrameSource
	detector  port.Detector
	annotator port.Annotator
	display   port.Display
	sink      port.SnapshotSink
	registry  port.SavedRegistry
	recorder  port.EventRecorder
	notifier  port.Notifier

	flagged  entity.ClassSet
	palette  *entity.Palette
	workingW int
	workingH int

	state     entity.SessionState
	closeOnce sync.Once
}

// tickOutcome — результат одной итерации цикла обработки.
type tickOutcome int

const (
	tickOK        tickOutcome = iota // кадр обработан и показан
	tickNoFrame                      // временный сбой чтения кадра
	tickRecovered                    // ошибка обработки, такт пропущен
	tickStop                         // запрошена остановка сеанса
)

// NewSessionService создаёт сервис сеанса. Журнал и оповещения
// необязательны: recorder и notifier могут быть nil.
func NewSessionService(
	source port.FrameSource,
	detector port.Detector,
	annotator port.Annotator,
	display port.Display,
	sink port.SnapshotSink,
	registry port.SavedRegistry,
	recorder port.EventRecorder,
	notifier port.Notifier,
	cfg SessionConfig,
) *SessionService {
	if cfg.Flagged == nil {
		cfg.Flagged = entity.DefaultFlaggedClasses()
	}
	if cfg.Palette == nil {
		cfg.Palette = entity.DefaultPalette()
	}
	if cfg.WorkingWidth <= 0 {
		cfg.WorkingWidth = 640
	}
	if cfg.WorkingHeight <= 0 {
		cfg.WorkingHeight = 640
	}

	return &SessionService{
		source:    source,
		detector:  detector,
		annotator: annotator,
		display:   display,
		sink:      sink,
		registry:  registry,
		recorder:  recorder,
		notifier:  notifier,
		flagged:   cfg.Flagged,
		palette:   cfg.Palette,
		workingW:  cfg.WorkingWidth,
		workingH:  cfg.WorkingHeight,
		state:     entity.SessionInitializing,
	}
}

// State возвращает текущее состояние сеанса.
func (s *SessionService) State() entity.SessionState {
	return s.state
}

// Run запускает цикл обработки и блокируется до запроса остановки
// или отмены контекста. Ресурсы освобождаются перед возвратом.
func (s *SessionService) Run(ctx context.Context) error {
	s.state = entity.SessionRunning

	for s.tick(ctx) != tickStop {
	}

	s.Close()
	return nil
}

// tick выполняет одну итерацию: чтение кадра, обработка, показ, опрос
// остановки. Любая ошибка внутри такта гасится, цикл продолжается.
func (s *SessionService) tick(ctx context.Context) tickOutcome {
	if ctx.Err() != nil {
		return tickStop
	}

	frame, err := s.source.Read()
	if err != nil {
		log.Printf("Failed to read frame: %v", err)
		return tickNoFrame
	}
	defer frame.Close()

	annotated, err := s.ProcessFrame(ctx, frame)
	if err != nil {
		log.Printf("Failed to process frame: %v", err)
		return tickRecovered
	}
	defer annotated.Close()

	if err := s.display.Show(annotated); err != nil {
		log.Printf("Failed to display frame: %v", err)
		return tickRecovered
	}

	if s.display.Poll() {
		return tickStop
	}
	return tickOK
}

// ProcessFrame прогоняет кадр через детектор и возвращает копию кадра
// с отрисованными детекциями. Снимок сохраняется для каждого
// помеченного объекта не более одного раза за сеанс.
func (s *SessionService) ProcessFrame(ctx context.Context, frame port.Frame) (port.Frame, error) {
	origW, origH := frame.Bounds()

	detections, err := s.detector.DetectAndTrack(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	annotated := frame.Clone()
	for _, det := range detections {
		box := det.Box.Rescale(s.workingW, s.workingH, origW, origH)
		text := fmt.Sprintf("%s: %.2f", det.Label, det.Confidence)

		if err := s.annotator.Draw(annotated, box, text, s.palette.ColorFor(det.Label)); err != nil {
			annotated.Close()
			return nil, fmt.Errorf("annotate: %w", err)
		}

		if !det.HasTrack || !s.flagged.Contains(det.Label) || s.registry.Contains(det.TrackID) {
			continue
		}

		// Снимок включает рамки объектов, отрисованных ранее на этом кадре.
		path, err := s.sink.Save(ctx, annotated)
		if err != nil {
			// Регистр не трогаем: попробуем снова на следующем кадре.
			log.Printf("Failed to save snapshot for track %d: %v", det.TrackID, err)
			continue
		}
		s.registry.Add(det.TrackID)
		log.Printf("Snapshot saved: %s (track %d, %s)", path, det.TrackID, det.Label)

		s.publish(ctx, entity.SnapshotEvent{
			TrackID:    det.TrackID,
			Label:      det.Label,
			Confidence: det.Confidence,
			Path:       path,
			TakenAt:    time.Now(),
		}, annotated)
	}

	return annotated, nil
}

// publish рассылает событие снимка в журнал и оператору.
// Обе доставки необязательны и не влияют на цикл обработки.
func (s *SessionService) publish(ctx context.Context, event entity.SnapshotEvent, frame port.Frame) {
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, event); err != nil {
			log.Printf("Failed to record snapshot event: %v", err)
		}
	}

	if s.notifier != nil {
		image, err := frame.EncodeJPEG()
		if err != nil {
			log.Printf("Failed to encode snapshot for notification: %v", err)
			return
		}
		if err := s.notifier.NotifySnapshot(ctx, event, image); err != nil {
			log.Printf("Failed to notify operator: %v", err)
		}
	}
}

// Close освобождает камеру, дисплей и модель. Повторные вызовы и вызов
// без запуска цикла безопасны.
func (s *SessionService) Close() {
	s.closeOnce.Do(func() {
		s.state = entity.SessionStopping

		if s.display != nil {
			if err := s.display.Close(); err != nil {
				log.Printf("Failed to close display: %v", err)
			}
		}
		if s.source != nil {
			if err := s.source.Close(); err != nil {
				log.Printf("Failed to close frame source: %v", err)
			}
		}
		if s.detector != nil {
			if err := s.detector.Close(); err != nil {
				log.Printf("Failed to close detector: %v", err)
			}
		}

		s.state = entity.SessionStopped
		log.Println("Session resources released")
	})
}
