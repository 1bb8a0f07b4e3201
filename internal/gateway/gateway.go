// Package gateway abstracts the messaging backend the dispatcher fans out to.
// The core only ever needs "send a message to a channel".
package gateway

import "context"

// Gateway delivers a rendered message to one channel. Implementations must be
// safe for concurrent use.
type Gateway interface {
	Send(ctx context.Context, channel, message string) error
	Name() string
}
