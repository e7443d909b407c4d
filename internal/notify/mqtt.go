package notify

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/model"
)

// Instruction kinds understood by subscriber devices.
const (
	instructionRegister  = "register"
	instructionCancelAll = "cancel_all"
)

// instruction is the wire envelope published to the reminder topic.
type instruction struct {
	Type         string                       `json:"type"`
	Notification *model.ScheduledNotification `json:"notification,omitempty"`
}

// MQTTNotifier publishes reminder instructions to a device-group topic.
// Devices subscribed to the topic own actual delivery; this side only
// registers and cancels.
type MQTTNotifier struct {
	client mqtt.Client
	group  string
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("mqtt connection lost")
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to mqtt broker")
}

// NewMQTTNotifier connects to the broker and returns a notifier publishing
// to prayer/<deviceGroup>/reminders.
func NewMQTTNotifier(brokerURL, clientID, deviceGroup string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTNotifier{client: client, group: deviceGroup}, nil
}

func (n *MQTTNotifier) reminderTopic() string {
	return fmt.Sprintf("prayer/%s/reminders", n.group)
}

func (n *MQTTNotifier) displayTopic() string {
	return fmt.Sprintf("prayer/%s/display", n.group)
}

// CancelAll tells every subscriber to drop its pending reminders.
func (n *MQTTNotifier) CancelAll(ctx context.Context) error {
	return n.publish(ctx, instruction{Type: instructionCancelAll})
}

// Register publishes one reminder instruction.
func (n *MQTTNotifier) Register(ctx context.Context, sn model.ScheduledNotification) error {
	return n.publish(ctx, instruction{Type: instructionRegister, Notification: &sn})
}

func (n *MQTTNotifier) publish(ctx context.Context, ins instruction) error {
	payload, err := json.Marshal(ins)
	if err != nil {
		return fmt.Errorf("marshal %s instruction: %w", ins.Type, err)
	}

	token := n.client.Publish(n.reminderTopic(), 1, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if token.Error() != nil {
		return fmt.Errorf("publish %s to %s: %w", ins.Type, n.reminderTopic(), token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}
