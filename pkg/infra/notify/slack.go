package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

type slackNotifier struct {
	webhookURL  string
	displayName string
}

// NewSlack creates a Notifier that posts release announcements to a Slack
// incoming webhook.
func NewSlack(webhookURL, displayName string) interfaces.Notifier {
	return &slackNotifier{
		webhookURL:  webhookURL,
		displayName: displayName,
	}
}

func (n *slackNotifier) Announce(ctx context.Context, rel *model.ResolvedRelease, releaseURL string) error {
	text := fmt.Sprintf("%s %s has been released (%s): %s",
		n.displayName, rel.Version, rel.Kind, releaseURL)

	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post release announcement")
	}
	return nil
}
