package notify

import (
	"context"
	"log"

	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/repository"
	"github.com/seportal/uniportal/pkg/rabbitmq"
)

// Notifier is the fire-and-forget notification collaborator. Failures are
// logged and swallowed; they must never affect the caller's primary
// operation.
type Notifier interface {
	Enqueue(ctx context.Context, userID uint, typ, title, message string)
}

type notifier struct {
	repo      repository.NotificationRepository
	publisher *rabbitmq.Publisher
}

// New builds a Notifier that persists notifications and, when a publisher is
// configured, fans them out over the message broker.
func New(repo repository.NotificationRepository, publisher *rabbitmq.Publisher) Notifier {
	return &notifier{repo: repo, publisher: publisher}
}

func (n *notifier) Enqueue(ctx context.Context, userID uint, typ, title, message string) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
	}

	if err := n.repo.Create(ctx, notification); err != nil {
		log.Printf("[notify] failed to store notification for user %d: %v", userID, err)
	}

	if n.publisher != nil {
		if err := n.publisher.Publish("notification."+typ, notification); err != nil {
			log.Printf("[notify] failed to publish notification for user %d: %v", userID, err)
		}
	}
}
