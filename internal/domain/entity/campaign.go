package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign campaña de marketing del tenant.
type Campaign struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// CampaignProduct asocia un producto a una campaña con precio promocional.
// Se elimina en cascada junto con su campaña.
type CampaignProduct struct {
	ID               int64
	CampaignID       int64
	ProductID        int64
	PromoPrice       decimal.Decimal
	DisplayFrequency int
}

// CampaignSchedule agenda (fecha + hora) de exhibición de una asociación campaña-producto.
type CampaignSchedule struct {
	ID                int64
	CampaignProductID int64
	Date              time.Time
	Time              string // HH:MM:SS
}
