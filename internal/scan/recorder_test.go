package scan_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/messaging"
	"github.com/partyqr/qr-router/internal/mocks"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/routing"
	"github.com/partyqr/qr-router/internal/scan"
	"github.com/partyqr/qr-router/internal/store/schema"
	"github.com/partyqr/qr-router/internal/store/storetest"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"

func TestRecorder_ConcurrentScansCountExactly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	st, db := storetest.NewStore(t)
	qr := &schema.QRCode{Code: "abc123", OwnerID: "owner", IsActive: true}
	require.NoError(t, st.CreateQRCodes(ctx, []*schema.QRCode{qr}))

	const scans = 40
	publisher := mocks.NewMockPublisher(ctrl)
	publisher.EXPECT().PublishScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *messaging.ScanMessage) error {
			assert.Equal(t, "abc123", msg.Code)
			assert.Equal(t, "mobile", msg.DeviceClass)
			return nil
		}).Times(scans)

	rec := scan.NewRecorder(scan.Config{WorkerPoolSize: 8, QueueSize: scans}, st, registry.NewQRRegistry(st, nil, 0), publisher)
	outcome := &routing.Outcome{URL: "https://example.com", QR: qr}
	scannedAt := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for range scans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, rec.Record(ctx, scan.Scan{Outcome: outcome, UserAgent: iphoneUA, IP: "10.0.0.1", ScannedAt: scannedAt}))
		}()
	}
	wg.Wait()
	require.NoError(t, rec.Close(ctx))

	reloaded, err := st.GetQRCodeByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(scans), reloaded.ScanCount)

	var records int64
	require.NoError(t, db.Model(&schema.ScanRecord{}).Where("qr_id = ?", qr.ID).Count(&records).Error)
	assert.Equal(t, int64(scans), records)

	assert.False(t, rec.Record(ctx, scan.Scan{Outcome: outcome, ScannedAt: scannedAt}))
}

func TestRecorder_DropsWhenSaturated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := mocks.NewMockStore(ctrl)
	qrs := mocks.NewMockQRRegistry(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	release := make(chan struct{})
	started := make(chan struct{}, 2)
	mockStore.EXPECT().CreateScanRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *schema.ScanRecord) error {
			started <- struct{}{}
			<-release
			return nil
		}).Times(2)
	qrs.EXPECT().RecordScan(gomock.Any(), "qr-1", gomock.Any()).Return(nil).Times(2)
	publisher.EXPECT().PublishScan(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	rec := scan.NewRecorder(scan.Config{WorkerPoolSize: 1, QueueSize: 1}, mockStore, qrs, publisher)
	outcome := &routing.Outcome{URL: "https://example.com", QR: &schema.QRCode{ID: "qr-1", Code: "abc123"}}

	assert.True(t, rec.Record(ctx, scan.Scan{Outcome: outcome}))
	<-started
	assert.True(t, rec.Record(ctx, scan.Scan{Outcome: outcome}))
	assert.False(t, rec.Record(ctx, scan.Scan{Outcome: outcome}))

	close(release)
	require.NoError(t, rec.Close(ctx))
}

func TestRecorder_SettlesStaleHintAndToleratesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := mocks.NewMockStore(ctrl)
	qrs := mocks.NewMockQRRegistry(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	qr := &schema.QRCode{ID: "qr-1", Code: "abc123"}
	outcome := &routing.Outcome{
		URL:         "https://x/b",
		QR:          qr,
		Event:       &schema.Event{ID: "event-1"},
		Destination: &schema.Destination{ID: "B"},
		HintStale:   true,
	}

	mockStore.EXPECT().CreateScanRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.ScanRecord) error {
			assert.Equal(t, "event-1", *record.EventID)
			assert.Equal(t, "B", *record.DestinationID)
			assert.Equal(t, domain.DeviceClassBot, record.DeviceClass)
			return assert.AnError
		})
	qrs.EXPECT().RecordScan(gomock.Any(), "qr-1", gomock.Any()).Return(assert.AnError)
	qrs.EXPECT().SettleActiveDestination(gomock.Any(), qr, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *schema.QRCode, destinationID *string) error {
			require.NotNil(t, destinationID)
			assert.Equal(t, "B", *destinationID)
			return nil
		})
	publisher.EXPECT().PublishScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *messaging.ScanMessage) error {
			assert.Equal(t, "event-1", msg.EventID)
			assert.Equal(t, "B", msg.DestinationID)
			return assert.AnError
		})

	rec := scan.NewRecorder(scan.Config{WorkerPoolSize: 1, QueueSize: 4}, mockStore, qrs, publisher)
	assert.True(t, rec.Record(ctx, scan.Scan{Outcome: outcome, UserAgent: "Googlebot/2.1"}))
	require.NoError(t, rec.Close(ctx))
}

func TestRecorder_IgnoresEmptyOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := scan.NewRecorder(scan.Config{}, mocks.NewMockStore(ctrl), mocks.NewMockQRRegistry(ctrl), mocks.NewMockPublisher(ctrl))
	assert.False(t, rec.Record(context.Background(), scan.Scan{}))
	require.NoError(t, rec.Close(context.Background()))
}

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		userAgent string
		expected  domain.DeviceClass
	}{
		{"", domain.DeviceClassUnknown},
		{iphoneUA, domain.DeviceClassMobile},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36", domain.DeviceClassMobile},
		{"Mozilla/5.0 (Linux; Android 13; SM-X700) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", domain.DeviceClassTablet},
		{"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15", domain.DeviceClassTablet},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 Safari/605.1.15", domain.DeviceClassDesktop},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", domain.DeviceClassDesktop},
		{"WhatsApp/2.23.20 A", domain.DeviceClassBot},
		{"curl/8.4.0", domain.DeviceClassBot},
		{"SomethingElse/1.0", domain.DeviceClassUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected)+"/"+tt.userAgent, func(t *testing.T) {
			assert.Equal(t, tt.expected, scan.ClassifyDevice(tt.userAgent))
		})
	}
}
