package render

import (
	"html/template"
	"time"

	"github.com/bgraf/kmroute/config"
	"github.com/goodsign/monday"
)

func makeTemplateFuncmap() template.FuncMap {
	locale := monday.Locale(config.EventLocale())

	return template.FuncMap{
		"eventDate": func(t time.Time) string {
			return monday.Format(t, "Monday, 2 January 2006", locale)
		},
		"distance": FormatDistance,
		"today":    time.Now,
	}
}
