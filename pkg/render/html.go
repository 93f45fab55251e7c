package render

import (
	"bytes"
	"html/template"

	"github.com/ylingene/gallery/pkg/gallery"
)

// pageTemplate positions every image absolutely inside a relatively
// positioned container, mirroring how the layout engine assigned geometry.
// Load hints become native loading attributes.
var pageTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Title}}{{.Title}}{{else}}Gallery{{end}}</title>
<style>
  body { margin: 0; background: #fafafa; font-family: sans-serif; }
  .gallery { position: relative; margin: 0 auto; width: {{printf "%.0f" .ContainerWidth}}px; height: {{printf "%.0f" .ContentHeight}}px; }
  .gallery img { position: absolute; object-fit: cover; display: block; }
  .filler { position: absolute; border: 1px dashed #bbb; box-sizing: border-box; }
</style>
</head>
<body>
{{if .Title}}<h1 style="text-align:center">{{.Title}}</h1>{{end}}
<div class="gallery">
{{- range .Boxes}}
  <img src="{{.ID}}" alt="{{.Alt}}" {{- if .Caption}} title="{{.Caption}}"{{end}} loading="{{.Load}}" style="left:{{printf "%.2f" .Left}}px;top:{{printf "%.2f" .Top}}px;width:{{printf "%.2f" .Width}}px;height:{{printf "%.2f" .Height}}px">
{{- end}}
{{- if .Filler}}
  <div class="filler" style="left:{{printf "%.2f" .FillerLeft}}px;top:{{printf "%.2f" .FillerTop}}px;width:{{printf "%.2f" .Filler.Width}}px;height:{{printf "%.2f" .Filler.Height}}px"></div>
{{- end}}
</div>
</body>
</html>
`))

// pageData wraps a LayoutDoc with the derived filler position.
type pageData struct {
	gallery.LayoutDoc
	FillerLeft float64
	FillerTop  float64
}

// HTML renders a self-contained static gallery page. Image sources are the
// box IDs, so the page works when written next to the scanned directory.
func HTML(doc gallery.LayoutDoc, opts ...Option) ([]byte, error) {
	data := pageData{LayoutDoc: doc}
	if doc.Filler != nil && len(doc.Boxes) > 0 {
		data.FillerLeft = doc.ContainerWidth - doc.Filler.Width
		data.FillerTop = doc.Boxes[len(doc.Boxes)-1].Top
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
