package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// MapRenderer emits the HTML element a route map is mounted into.
type MapRenderer interface {
	// Embed inlines the payload into the page.
	Embed(elementID string, payload MapPayload) (template.HTML, error)
	// Deferred makes the page fetch the payload from dataURL after loading.
	Deferred(elementID string, dataURL string) template.HTML
}

// NewMapRenderer returns a Leaflet renderer when a tile source is configured.
// Without one the map could never be drawn, so a static placeholder is used.
func NewMapRenderer(style Style) MapRenderer {
	if style.TileURL == "" {
		return placeholderRenderer{}
	}
	return leafletRenderer{}
}

type leafletRenderer struct{}

func (leafletRenderer) Embed(elementID string, payload MapPayload) (template.HTML, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode map payload: %w", err)
	}

	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="route-map" id="%s">`, template.HTMLEscapeString(elementID)))
	_, _ = buf.WriteString(fmt.Sprintf(`
		<script>
		(function () {
			const mapData = %s;
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				mountRouteMap(mapContainer, mapData);
			});
		})();
		</script>`,
		string(payloadBytes),
	))
	_, _ = buf.WriteString("</div>")

	return template.HTML(buf.String()), nil
}

func (leafletRenderer) Deferred(elementID string, dataURL string) template.HTML {
	dataURLBytes, _ := json.Marshal(dataURL)

	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="route-map" id="%s">`, template.HTMLEscapeString(elementID)))
	_, _ = buf.WriteString(placeholderHTML)
	_, _ = buf.WriteString(fmt.Sprintf(`
		<script>
		(function () {
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				loadAndMountRouteMap(mapContainer, { 'dataURL': %s });
			});
		})();
		</script>`,
		string(dataURLBytes),
	))
	_, _ = buf.WriteString("</div>")

	return template.HTML(buf.String())
}

const placeholderHTML = `<div class="route-map-placeholder"><p>Loading map...</p></div>`

type placeholderRenderer struct{}

func (placeholderRenderer) Embed(elementID string, _ MapPayload) (template.HTML, error) {
	return placeholderRenderer{}.Deferred(elementID, ""), nil
}

func (placeholderRenderer) Deferred(elementID string, _ string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<div class="route-map" id="%s">%s</div>`,
		template.HTMLEscapeString(elementID),
		placeholderHTML,
	))
}

// Unavailable renders the map element of a route whose track could not be
// loaded.
func Unavailable(elementID string) template.HTML {
	return placeholderRenderer{}.Deferred(elementID, "")
}
