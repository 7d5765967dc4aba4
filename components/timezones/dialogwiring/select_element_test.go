package dialogwiring

import (
	"testing"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/pkg/model"
)

func TestTimezoneSelectElement_Defaults(t *testing.T) {
	el := TimezoneSelectElement("tz", "Timezone", "/admin")

	if el.Name != "tz" || el.DisplayName != "Timezone" {
		t.Fatalf("unexpected identity: %#v", el)
	}
	if el.Type != model.ElementTypeSelect {
		t.Fatalf("unexpected type: %q", el.Type)
	}
	if el.DataSource != model.DataSourceDynamic {
		t.Fatalf("unexpected data source: %q", el.DataSource)
	}
	if el.DataSourceURL != "/admin/dialog/timezones?limit=50" {
		t.Fatalf("unexpected url: %q", el.DataSourceURL)
	}
}

func TestTimezoneSelectElement_CustomRouteAndPageSize(t *testing.T) {
	el := TimezoneSelectElement(
		"tz",
		"Timezone",
		"/admin",
		timezones.WithRoutePath("/api/tz"),
		timezones.WithPageSize(10, 0),
	)

	if el.DataSourceURL != "/admin/api/tz?limit=10" {
		t.Fatalf("unexpected url: %q", el.DataSourceURL)
	}
}

func TestPinTimezone(t *testing.T) {
	el := model.Element{Name: "when", Type: model.ElementTypeDateTime}
	if !PinTimezone(&el, "Europe/London") {
		t.Fatalf("expected known zone to be pinned")
	}
	if got := el.LocationTimezone(); got != "Europe/London" {
		t.Fatalf("unexpected zone: %q", got)
	}
	if PinTimezone(&el, "Nowhere/Special") {
		t.Fatalf("expected unknown zone to be rejected")
	}

	text := model.Element{Name: "notes", Type: model.ElementTypeText}
	if PinTimezone(&text, "UTC") {
		t.Fatalf("expected non-date element to be left alone")
	}
}
