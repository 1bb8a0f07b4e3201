package gateway

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackGateway delivers messages through the Slack Web API. Channels in the
// subscription set are Slack channel IDs.
type SlackGateway struct {
	client *slack.Client
}

// NewSlackGateway constructs a SlackGateway from a bot token.
func NewSlackGateway(token string) *SlackGateway {
	return &SlackGateway{client: slack.New(token)}
}

func (g *SlackGateway) Send(ctx context.Context, channel, message string) error {
	_, _, err := g.client.PostMessageContext(ctx, channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("slack send to %s: %w", channel, err)
	}
	return nil
}

func (g *SlackGateway) Name() string { return "slack" }
