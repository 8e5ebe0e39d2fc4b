package store

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// GetDestinationByID retrieves a destination
func (s *pgStore) GetDestinationByID(ctx context.Context, destinationID string) (*schema.Destination, error) {
	return first[schema.Destination](ctx, s.db, "destination", "id = ?", destinationID)
}

// GetDestinationsByQR retrieves every destination of a QR within an event
func (s *pgStore) GetDestinationsByQR(ctx context.Context, eventID string, qrID string) ([]schema.Destination, error) {
	var destinations []schema.Destination
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND qr_id = ?", eventID, qrID).
		Order("priority ASC, id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get destinations by qr: %w", err)
	}
	return destinations, nil
}

// GetDestinationsByQRIDs retrieves every destination of the given QRs within an event
func (s *pgStore) GetDestinationsByQRIDs(ctx context.Context, eventID string, qrIDs []string) ([]schema.Destination, error) {
	if len(qrIDs) == 0 {
		return nil, nil
	}

	var destinations []schema.Destination
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND qr_id IN ?", eventID, qrIDs).
		Order("priority ASC, id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get destinations by qr ids: %w", err)
	}
	return destinations, nil
}

// CreateDefaultDestinations inserts default destinations.
// The partial unique index on (event_id, qr_id, type, is_default) turns a racing duplicate into a no-op.
func (s *pgStore) CreateDefaultDestinations(ctx context.Context, destinations []*schema.Destination) error {
	if len(destinations) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&destinations).Error
	if err != nil {
		return fmt.Errorf("failed to create default destinations: %w", err)
	}
	return nil
}

// UpdateDestination applies an update and returns the updated row
func (s *pgStore) UpdateDestination(ctx context.Context, destinationID string, update DestinationUpdate) (*schema.Destination, error) {
	values := map[string]any{}
	if update.Type != nil {
		values["type"] = *update.Type
	}
	if update.TargetURL != nil {
		values["target_url"] = *update.TargetURL
	}
	if update.Payload != nil {
		values["payload"] = datatypes.JSON(update.Payload)
	}
	if update.IsActive != nil {
		values["is_active"] = *update.IsActive
	}
	if update.Priority != nil {
		values["priority"] = *update.Priority
	}
	if update.ClearStartAt {
		values["start_at"] = nil
	} else if update.StartAt != nil {
		values["start_at"] = *update.StartAt
	}
	if update.ClearEndAt {
		values["end_at"] = nil
	} else if update.EndAt != nil {
		values["end_at"] = *update.EndAt
	}

	if len(values) > 0 {
		result := s.db.WithContext(ctx).Model(&schema.Destination{}).Where("id = ?", destinationID).Updates(values)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update destination: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("failed to update destination %s: %w", destinationID, domain.ErrNotFound)
		}
	}

	return s.GetDestinationByID(ctx, destinationID)
}

// DeleteDestination deletes a destination
func (s *pgStore) DeleteDestination(ctx context.Context, destinationID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", destinationID).Delete(&schema.Destination{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete destination: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete destination %s: %w", destinationID, domain.ErrNotFound)
	}
	return nil
}

// ReplaceEventRules deletes all destinations and challenges of an event and inserts the new ones.
// QR hints pointing into the event are cleared first so none references a deleted row.
func (s *pgStore) ReplaceEventRules(ctx context.Context, input ReplaceEventRulesInput) (*ReplaceEventRulesResult, error) {
	var result ReplaceEventRulesResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.QRCode{}).
			Where("event_id = ?", input.EventID).
			UpdateColumn("active_destination_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear active destinations: %w", err)
		}

		deleted := tx.Where("event_id = ?", input.EventID).Delete(&schema.Destination{})
		if deleted.Error != nil {
			return fmt.Errorf("failed to delete destinations: %w", deleted.Error)
		}
		result.DeletedDestinations = deleted.RowsAffected

		deleted = tx.Where("event_id = ?", input.EventID).Delete(&schema.Challenge{})
		if deleted.Error != nil {
			return fmt.Errorf("failed to delete challenges: %w", deleted.Error)
		}
		result.DeletedChallenges = deleted.RowsAffected

		if len(input.Challenges) > 0 {
			if err := tx.Create(&input.Challenges).Error; err != nil {
				return fmt.Errorf("failed to create challenges: %w", err)
			}
		}
		if len(input.Destinations) > 0 {
			if err := tx.Create(&input.Destinations).Error; err != nil {
				return fmt.Errorf("failed to create destinations: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace event rules: %w", err)
	}

	return &result, nil
}

// CreateModulesIfAbsent inserts modules, leaving existing (event, type) pairs untouched
func (s *pgStore) CreateModulesIfAbsent(ctx context.Context, modules []*schema.Module) error {
	if len(modules) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "type"}},
			DoNothing: true,
		}).
		Create(&modules).Error
	if err != nil {
		return fmt.Errorf("failed to create modules: %w", err)
	}
	return nil
}

// UpsertModuleStatus sets the status of a module, creating it if missing
func (s *pgStore) UpsertModuleStatus(ctx context.Context, eventID string, moduleType domain.ModuleType, status domain.ModuleStatus) error {
	module := &schema.Module{EventID: eventID, Type: moduleType, Status: status}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(module).Error
	if err != nil {
		return fmt.Errorf("failed to upsert module status: %w", err)
	}
	return nil
}

// GetModulesByEventID retrieves the modules of an event
func (s *pgStore) GetModulesByEventID(ctx context.Context, eventID string) ([]schema.Module, error) {
	var modules []schema.Module
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("type ASC").Find(&modules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get modules: %w", err)
	}
	return modules, nil
}

// EnsureAlbum inserts an album unless one with the same slug exists for the event
func (s *pgStore) EnsureAlbum(ctx context.Context, album *schema.Album) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "slug"}},
			DoNothing: true,
		}).
		Create(album).Error
	if err != nil {
		return fmt.Errorf("failed to ensure album: %w", err)
	}
	return nil
}

// GetChallengesByEventID retrieves the challenges of an event in order
func (s *pgStore) GetChallengesByEventID(ctx context.Context, eventID string) ([]schema.Challenge, error) {
	var challenges []schema.Challenge
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("position ASC").Find(&challenges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges: %w", err)
	}
	return challenges, nil
}
