package jetstream

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/messaging"
	"github.com/partyqr/qr-router/internal/mocks"
)

var testConfig = Config{
	URL:            "nats://localhost:4222",
	StreamName:     "QR_ROUTER_EVENTS",
	MaxReconnects:  3,
	ReconnectWait:  time.Second,
	ConnectionName: "test",
}

func newTestPublisher(t *testing.T, ctrl *gomock.Controller) (messaging.Publisher, *mocks.MockJetStream, *mocks.MockNatsConn) {
	t.Helper()
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)

	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) error {
			assert.Equal(t, "QR_ROUTER_EVENTS", cfg.Name)
			assert.ElementsMatch(t, []string{"qr.scanned", "event.activated"}, cfg.Subjects)
			return nil
		})

	pub, err := NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJCS())
	require.NoError(t, err)
	return pub, js, nc
}

func TestNewPublisher_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nil, nil, assert.AnError)
	_, err := NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJCS())
	assert.ErrorContains(t, err, "failed to connect to NATS")

	js := mocks.NewMockJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(assert.AnError)
	nc.EXPECT().Close()
	_, err = NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJCS())
	assert.ErrorContains(t, err, "failed to ensure stream")
}

func TestPublisher_PublishScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub, js, _ := newTestPublisher(t, ctrl)
	scannedAt := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)

	js.EXPECT().Publish(gomock.Any(), "qr.scanned", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			assert.Len(t, opts, 1)
			// Canonical JSON has sorted keys and no insignificant whitespace
			assert.Regexp(t, `^\{"code":"abc123","destination_id":"B","device_class":"mobile","event_id":"e1","message_id":"[0-9A-Z]{26}","qr_id":"q1","scanned_at":"2024-01-01T21:00:00Z","was_expired":false\}$`, string(data))
			return &natsjs.PubAck{Stream: "QR_ROUTER_EVENTS", Sequence: 1}, nil
		})

	msg := &messaging.ScanMessage{QRID: "q1", Code: "abc123", EventID: "e1", DestinationID: "B", DeviceClass: "mobile", ScannedAt: scannedAt}
	require.NoError(t, pub.PublishScan(context.Background(), msg))
	assert.Len(t, msg.MessageID, 26)

	js.EXPECT().Publish(gomock.Any(), "qr.scanned", gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	err := pub.PublishScan(context.Background(), &messaging.ScanMessage{QRID: "q1"})
	assert.ErrorContains(t, err, "failed to publish qr.scanned message")
}

func TestPublisher_PublishEventActivated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub, js, nc := newTestPublisher(t, ctrl)

	js.EXPECT().Publish(gomock.Any(), "event.activated", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded messaging.EventActivatedMessage
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, "event-activated-e1", decoded.MessageID)
			assert.Equal(t, 2, decoded.QRCount)
			return &natsjs.PubAck{}, nil
		})

	require.NoError(t, pub.PublishEventActivated(context.Background(), &messaging.EventActivatedMessage{
		EventID: "e1", OwnerID: "u1", OrderID: "o1", QRCount: 2, ActivatedAt: time.Now().UTC(),
	}))

	nc.EXPECT().Drain().Return(nil)
	pub.Close()
}

func TestNoopPublisher(t *testing.T) {
	pub := messaging.NewNoopPublisher()
	assert.NoError(t, pub.PublishScan(context.Background(), &messaging.ScanMessage{}))
	assert.NoError(t, pub.PublishEventActivated(context.Background(), &messaging.EventActivatedMessage{}))
	pub.Close()
}
