// Package dialogwiring connects the timezones component to dialog
// definitions.
package dialogwiring

import (
	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/pkg/model"
)

// TimezoneSelectElement returns a dynamic select element whose options are
// served by the timezones component mounted under basePath.
func TimezoneSelectElement(name, displayName, basePath string, fns ...timezones.OptionFn) model.Element {
	return model.Element{
		Name:          name,
		DisplayName:   displayName,
		Type:          model.ElementTypeSelect,
		DataSource:    model.DataSourceDynamic,
		DataSourceURL: timezones.DataSourceURL(basePath, timezones.NewOptions(fns...)),
	}
}

// PinTimezone sets the location timezone of a date element when zone is a
// known IANA name. It reports whether the element was changed.
func PinTimezone(el *model.Element, zone string) bool {
	if el == nil || !el.IsDateKind() || !timezones.Known(zone) {
		return false
	}
	if el.DateTimeConfig == nil {
		el.DateTimeConfig = &model.DateTimeConfig{}
	}
	el.DateTimeConfig.LocationTimezone = zone
	return true
}
