package schema

// Models lists every table for migration
func Models() []any {
	return []any{
		&QRGroup{},
		&QRCode{},
		&Event{},
		&EventMember{},
		&Destination{},
		&ScanRecord{},
		&Module{},
		&Album{},
		&Challenge{},
		&Order{},
		&AuditLog{},
		&PaymentWebhookEvent{},
	}
}
