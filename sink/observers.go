package sink

import (
	"file-exchange/contract"
	"file-exchange/domain"
	"log/slog"
)

// Observers fans a progress event out to several observers. A panicking
// observer is logged and skipped so the others still receive the event.
type Observers struct {
	log       *slog.Logger
	observers []contract.ProgressObserver
}

func NewObservers(log *slog.Logger, observers ...contract.ProgressObserver) *Observers {
	return &Observers{log: log, observers: observers}
}

func (o *Observers) OnProgress(evt domain.ProgressEvent) {
	for _, observer := range o.observers {
		o.dispatch(observer, evt)
	}
}

func (o *Observers) dispatch(observer contract.ProgressObserver, evt domain.ProgressEvent) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("Progress observer panicked", "upload_id", evt.UploadID, "panic", r)
		}
	}()
	observer.OnProgress(evt)
}
