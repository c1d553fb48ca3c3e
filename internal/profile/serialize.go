package profile

import (
	"github.com/skyfreq/gridpad/internal/canonjson"
)

// Marshal renders the profile as canonical JSON text: fixed field order per
// entity, two-space indent, inline label arrays while they fit, one trailing
// newline. Serializing a normalized profile and loading the bytes back yields
// an equal document, and client page content survives byte-for-byte.
func Marshal(p Profile) []byte {
	doc := canonjson.Object{
		{Key: "id", Value: p.ID},
		{Key: "type", Value: p.Type},
		{Key: "tabs", Value: tabsValue(p.Tabs)},
	}
	return canonjson.Format(doc)
}

func tabsValue(tabs []Tab) []any {
	out := make([]any, len(tabs))
	for i, t := range tabs {
		out[i] = canonjson.Object{
			{Key: "label", Value: linesValue(t.Label)},
			{Key: "page", Value: pageValue(t.Page)},
		}
	}
	return out
}

func pageValue(pg Page) canonjson.Object {
	obj := canonjson.Object{{Key: "rows", Value: pg.Rows}}
	if pg.IsClientPage() {
		return append(obj, canonjson.Member{Key: "client_page", Value: pg.ClientPage})
	}
	keys := make([]any, len(pg.Keys))
	for i, k := range pg.Keys {
		keys[i] = keyValue(k)
	}
	return append(obj, canonjson.Member{Key: "keys", Value: keys})
}

func keyValue(k Key) canonjson.Object {
	obj := canonjson.Object{{Key: "label", Value: linesValue(k.Label)}}
	if k.StationID != "" {
		obj = append(obj, canonjson.Member{Key: "station_id", Value: k.StationID})
	}
	if k.Page != nil {
		obj = append(obj, canonjson.Member{Key: "page", Value: pageValue(*k.Page)})
	}
	return obj
}

func linesValue(lines []string) []any {
	out := make([]any, len(lines))
	for i, l := range lines {
		out[i] = l
	}
	return out
}
