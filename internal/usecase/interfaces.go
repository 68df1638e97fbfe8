package usecase

import "fleamarket/internal/domain/entity"

// Notifier receives a change event after every successful write. Publish must
// not block.
type Notifier interface {
	Publish(event entity.ChangeEvent)
}

type noopNotifier struct{}

func (noopNotifier) Publish(entity.ChangeEvent) {}
