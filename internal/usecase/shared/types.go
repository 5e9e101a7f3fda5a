package shared

import (
	"fmt"
	"time"

	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/pkg/config"
)

// ShopSettings is the static shop configuration both sides of the use case layer read.
type ShopSettings struct {
	Catalog  *slot.Catalog
	Location *time.Location
	Policy   schedule.Policy
}

func NewShopSettings(cfg config.Config) (ShopSettings, error) {
	loc, err := time.LoadLocation(cfg.Shop.TimeZone)
	if err != nil {
		return ShopSettings{}, fmt.Errorf("invalid SHOP_TIMEZONE %q: %w", cfg.Shop.TimeZone, err)
	}

	catalog := slot.DefaultCatalog()
	if len(cfg.Shop.SlotCatalog) > 0 {
		catalog, err = slot.NewCatalog(cfg.Shop.SlotCatalog)
		if err != nil {
			return ShopSettings{}, fmt.Errorf("invalid SLOT_CATALOG: %w", err)
		}
	}

	return ShopSettings{
		Catalog:  catalog,
		Location: loc,
		Policy:   schedule.Policy{ReopenCancelled: cfg.Shop.ReopenCancelled},
	}, nil
}

// Today is the current civil date and wall clock in the shop's timezone.
func (s ShopSettings) Today(now time.Time) (slot.Date, time.Time) {
	local := now.In(s.Location)
	return slot.DateOf(local), local
}
