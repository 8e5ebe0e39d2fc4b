package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// GetQRCodeByCode retrieves a QR by its unique code
func (s *pgStore) GetQRCodeByCode(ctx context.Context, code string) (*schema.QRCode, error) {
	return first[schema.QRCode](ctx, s.db, "qr code", "code = ?", code)
}

// GetQRCodesByGroupID retrieves all QRs tagged with a group
func (s *pgStore) GetQRCodesByGroupID(ctx context.Context, groupID string) ([]schema.QRCode, error) {
	var qrs []schema.QRCode
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("code ASC").
		Find(&qrs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get qr codes by group: %w", err)
	}
	return qrs, nil
}

// GetQRCodesByCodes retrieves the QRs matching any of the codes
func (s *pgStore) GetQRCodesByCodes(ctx context.Context, codes []string) ([]schema.QRCode, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	var qrs []schema.QRCode
	err := s.db.WithContext(ctx).
		Where("code IN ?", codes).
		Order("code ASC").
		Find(&qrs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get qr codes by codes: %w", err)
	}
	return qrs, nil
}

// GetQRCodesByEventID retrieves all QRs linked to an event
func (s *pgStore) GetQRCodesByEventID(ctx context.Context, eventID string) ([]schema.QRCode, error) {
	var qrs []schema.QRCode
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("code ASC").
		Find(&qrs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get qr codes by event: %w", err)
	}
	return qrs, nil
}

// CreateQRCodes inserts new QRs
func (s *pgStore) CreateQRCodes(ctx context.Context, qrs []*schema.QRCode) error {
	if len(qrs) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&qrs).Error; err != nil {
		return fmt.Errorf("failed to create qr codes: %w", err)
	}
	return nil
}

// IncrementQRScanCount atomically increments the scan counter and sets last_active_at
// The increment happens in SQL so concurrent scans never lose updates
func (s *pgStore) IncrementQRScanCount(ctx context.Context, qrID string, at time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.QRCode{}).
		Where("id = ?", qrID).
		UpdateColumns(map[string]any{
			"scan_count":     gorm.Expr("scan_count + 1"),
			"last_active_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment scan count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to increment scan count of qr %s: %w", qrID, domain.ErrNotFound)
	}
	return nil
}

// LinkQRCodeToEvent sets the event and active destination hint of a QR
func (s *pgStore) LinkQRCodeToEvent(ctx context.Context, qrID string, eventID string, activeDestinationID *string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.QRCode{}).
		Where("id = ?", qrID).
		Updates(map[string]any{
			"event_id":              eventID,
			"active_destination_id": activeDestinationID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to link qr code to event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to link qr code %s: %w", qrID, domain.ErrNotFound)
	}
	return nil
}

// SetQRCodeActiveDestination replaces the active destination hint of a QR
func (s *pgStore) SetQRCodeActiveDestination(ctx context.Context, qrID string, destinationID *string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.QRCode{}).
		Where("id = ?", qrID).
		UpdateColumn("active_destination_id", destinationID).Error
	if err != nil {
		return fmt.Errorf("failed to set active destination: %w", err)
	}
	return nil
}

// ClearActiveDestinationReferences unsets the hint on QRs pointing at a destination
func (s *pgStore) ClearActiveDestinationReferences(ctx context.Context, destinationID string) ([]string, error) {
	var codes []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.QRCode{}).
			Where("active_destination_id = ?", destinationID).
			Pluck("code", &codes).Error; err != nil {
			return err
		}
		if len(codes) == 0 {
			return nil
		}
		return tx.Model(&schema.QRCode{}).
			Where("active_destination_id = ?", destinationID).
			UpdateColumn("active_destination_id", nil).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear active destination references: %w", err)
	}
	return codes, nil
}

// AssignQRCodesToGroup tags ungrouped QRs with a group.
// A concurrent delivery that grouped them first keeps its group.
func (s *pgStore) AssignQRCodesToGroup(ctx context.Context, qrIDs []string, groupID string) error {
	if len(qrIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&schema.QRCode{}).
		Where("id IN ? AND group_id IS NULL", qrIDs).
		Update("group_id", groupID).Error
	if err != nil {
		return fmt.Errorf("failed to assign qr codes to group: %w", err)
	}
	return nil
}

// UpdateQRCode applies owner edits to a QR and returns the updated row
func (s *pgStore) UpdateQRCode(ctx context.Context, qrID string, update QRCodeUpdate) (*schema.QRCode, error) {
	values := map[string]any{}
	if update.DestinationURL != nil {
		values["destination_url"] = *update.DestinationURL
	}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.IsActive != nil {
		values["is_active"] = *update.IsActive
	}

	if len(values) > 0 {
		result := s.db.WithContext(ctx).Model(&schema.QRCode{}).Where("id = ?", qrID).Updates(values)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update qr code: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("failed to update qr code %s: %w", qrID, domain.ErrNotFound)
		}
	}

	return first[schema.QRCode](ctx, s.db, "qr code", "id = ?", qrID)
}

// DeleteQRCode soft deletes a QR
func (s *pgStore) DeleteQRCode(ctx context.Context, qrID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", qrID).Delete(&schema.QRCode{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete qr code: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete qr code %s: %w", qrID, domain.ErrNotFound)
	}
	return nil
}

// CreateQRGroup inserts a new QR group
func (s *pgStore) CreateQRGroup(ctx context.Context, group *schema.QRGroup) error {
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("failed to create qr group: %w", err)
	}
	return nil
}

// DeleteQRGroupIfUnused removes a group that lost a grouping race
func (s *pgStore) DeleteQRGroupIfUnused(ctx context.Context, groupID string) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", groupID).
		Where("NOT EXISTS (?)", s.db.Model(&schema.QRCode{}).Select("1").Where("group_id = ?", groupID)).
		Where("NOT EXISTS (?)", s.db.Model(&schema.Event{}).Select("1").Where("qr_group_id = ?", groupID)).
		Delete(&schema.QRGroup{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete qr group: %w", err)
	}
	return nil
}
