package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/islamku/muadzin/internal/model"
)

// Update publishes the countdown line to the device group's display topic.
// The message is retained so a device that reconnects immediately shows the
// last known state instead of a blank screen.
func (n *MQTTNotifier) Update(ctx context.Context, state model.DisplayState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal display state: %w", err)
	}

	token := n.client.Publish(n.displayTopic(), 1, true, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if token.Error() != nil {
		return fmt.Errorf("publish display state to %s: %w", n.displayTopic(), token.Error())
	}
	return nil
}
