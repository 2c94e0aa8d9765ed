package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00
)

// Game Mechanics Constants
const (
	// Daily claim system
	DailyClaimGrant  = 30
	DailyClaimPeriod = 24 * time.Hour
)

// Timeouts
const (
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	PresenceTimeout         = 5 * time.Second
	GatewayOpenTimeout      = 10 * time.Second
	ShutdownTimeout         = 10 * time.Second
)

// Monitoring intervals
const (
	LedgerReportInterval = 15 * time.Minute
)
