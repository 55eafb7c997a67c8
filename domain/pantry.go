package domain

import (
	"errors"
	"time"
)

const (
	StatusGood         = "Good"
	StatusExpiringSoon = "Expiring Soon"
	StatusCritical     = "Critical"
	StatusExpired      = "Expired"

	CategoryDairyChill   = "Dairy & Chill"
	CategoryBakerySnacks = "Bakery & Snacks"
	CategoryRiceGrains   = "Rice & Grains"
	CategoryProduce      = "Produce"
	CategoryBeverages    = "Beverages"
)

var (
	MessageSuccessGetPantry         = "pantry retrieved successfully"
	MessageSuccessDeletePantryEntry = "pantry entry deleted successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageSuccessGetNotifications  = "notifications retrieved successfully"
	MessageSuccessSendDigest        = "notification digest sent"
	MessageSuccessGetSimulation     = "simulation date retrieved successfully"
	MessageSuccessSetSimulation     = "simulation date updated successfully"

	MessageFailedGetPantry         = "failed to retrieve pantry"
	MessageFailedDeletePantryEntry = "failed to delete pantry entry"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"
	MessageFailedGetNotifications  = "failed to retrieve notifications"
	MessageFailedSendDigest        = "failed to send notification digest"
	MessageFailedSetSimulation     = "failed to update simulation date"

	ErrPantryEntryNotFound   = errors.New("pantry entry not found")
	ErrNotificationRecipient = errors.New("NOTIFY_EMAIL not configured")
)

type (
	PantryEntryResponse struct {
		Index      int       `json:"index"`
		Item       string    `json:"item"`
		BuyDate    time.Time `json:"buy_date"`
		ExpiryDate time.Time `json:"expiry_date"`
		DaysLeft   int       `json:"days_left"`
		Status     string    `json:"status"`
	}

	PantryResponse struct {
		ReferenceDate time.Time             `json:"reference_date"`
		Entries       []PantryEntryResponse `json:"entries"`
	}

	NotificationsResponse struct {
		ReferenceDate      time.Time `json:"reference_date"`
		ExpiryAlerts       []string  `json:"expiry_alerts"`
		RestockSuggestions []string  `json:"restock_suggestions"`
		Total              int       `json:"total"`
	}

	DashboardStatsResponse struct {
		TotalValue      float64            `json:"total_value"`
		HealthScore     float64            `json:"health_score"`
		ItemCount       int                `json:"item_count"`
		GoodItems       int                `json:"good_items"`
		ExpiringItems   int                `json:"expiring_items"`
		CriticalItems   int                `json:"critical_items"`
		ExpiredItems    int                `json:"expired_items"`
		SpendByCategory map[string]float64 `json:"spend_by_category"`
	}

	SimulationRequest struct {
		DaysOffset int `json:"days_offset" validate:"min=-365,max=365"`
	}

	DigestResponse struct {
		Recipient string `json:"recipient"`
		Sent      bool   `json:"sent"`
		Total     int    `json:"total"`
	}

	SimulationResponse struct {
		DaysOffset    int       `json:"days_offset"`
		ReferenceDate time.Time `json:"reference_date"`
	}
)
