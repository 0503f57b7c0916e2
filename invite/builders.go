package invite

import (
	"embed"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFiles embed.FS

func mustTemplate(name string) *pongo2.Template {
	data, err := templateFiles.ReadFile("templates/" + name)
	if err != nil {
		panic(fmt.Errorf("invite: missing embedded template %s: %w", name, err))
	}
	tpl, err := pongo2.FromString(string(data))
	if err != nil {
		panic(fmt.Errorf("invite: failed to compile template %s: %w", name, err))
	}
	return tpl
}

var (
	birthdayTemplate = mustTemplate("birthday.html")
	kwibukaTemplate  = mustTemplate("kwibuka.html")
	eventTemplate    = mustTemplate("event.html")
)

// Free-text values pass through pongo2's default autoescaping, so user
// input cannot inject markup into the rendered document. Only data URIs
// produced by the asset resolver or validated as such are marked safe in
// the templates.

// BirthdayBuilder renders the birthday card layout. The uploaded photo
// arrives in the record as a data URI; no local art is needed.
type BirthdayBuilder struct{}

func (BirthdayBuilder) BuildMarkup(record Record, _ *AssetResolver) (string, error) {
	out, err := birthdayTemplate.Execute(pongo2.Context{
		"name":    record["name"],
		"message": record["message"],
		"image":   record["image"],
	})
	if err != nil {
		return "", NewError(KindInternal, "birthday markup failed", err)
	}
	return out, nil
}

// KwibukaBuilder renders the commemoration card. The commemoration date is
// split into display segments and the icon plus background art are inlined
// as data URIs.
type KwibukaBuilder struct{}

func (KwibukaBuilder) BuildMarkup(record Record, assets *AssetResolver) (string, error) {
	icon, err := assets.DataURI(AssetKwibukaIcon)
	if err != nil {
		return "", err
	}
	bg, err := assets.DataURI(AssetKwibukaBg)
	if err != nil {
		return "", err
	}

	out, err := kwibukaTemplate.Execute(pongo2.Context{
		"years":           record["years"],
		"date_parts":      SplitDateSegments(record["date"]),
		"venue":           record["venue"],
		"message_of_hope": record["messageOfHope"],
		"kwibuka_icon":    icon,
		"kwibuka_bg":      bg,
	})
	if err != nil {
		return "", NewError(KindInternal, "kwibuka markup failed", err)
	}
	return out, nil
}

// EventBuilder renders the meetup invitation. The event day string is
// tokenized into day/month/year display parts; the logo and the beige
// background are inlined as data URIs.
type EventBuilder struct{}

func (EventBuilder) BuildMarkup(record Record, assets *AssetResolver) (string, error) {
	logo, err := assets.DataURI(AssetImenaLogo)
	if err != nil {
		return "", err
	}
	bg, err := assets.DataURI(AssetBeigeBg)
	if err != nil {
		return "", err
	}

	day := ParseEventDay(record["eventDay"])
	out, err := eventTemplate.Execute(pongo2.Context{
		"event_day":      record["eventDay"],
		"event_date":     record["eventDate"],
		"hosting_family": record["hostingFamily"],
		"location":       record["location"],
		"day":            day.Day,
		"month":          day.Month,
		"year":           day.Year,
		"imena_logo":     logo,
		"beige_bg":       bg,
	})
	if err != nil {
		return "", NewError(KindInternal, "event markup failed", err)
	}
	return out, nil
}
