package container

import (
	app "vision-inspector/internal/application"
	"vision-inspector/internal/domain/port"
)

// Container собирает сервисы приложения.
type Container struct {
	Session *app.SessionService
}

// New связывает коллабораторов в сервис сеанса. Журнал и оповещения
// необязательны: recorder и notifier могут быть nil.
func New(
	source port.FrameSource,
	detector port.Detector,
	annotator port.Annotator,
	display port.Display,
	sink port.SnapshotSink,
	registry port.SavedRegistry,
	recorder port.EventRecorder,
	notifier port.Notifier,
	cfg app.SessionConfig,
) *Container {
	session := app.NewSessionService(source, detector, annotator, display, sink, registry, recorder, notifier, cfg)

	return &Container{
		Session: session,
	}
}
