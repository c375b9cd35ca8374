// Package icon renders marker and cluster badge images as self-contained SVG data URIs.
package icon

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"net/url"
	"strings"

	"waffer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	// MaxLabelRunes is the number of label characters kept before the ellipsis
	MaxLabelRunes = 10
	ellipsis      = "…"

	accentColor = "#d37b01"

	svgWidth    = 100.0
	svgHeight   = 95.0
	outerSize   = 45.0
	innerSize   = 40.0
	labelWidth  = 100.0
	labelHeight = 22.0
	thumbCY     = 25.0
	displayRate = 0.9

	badgeSize   = 48.0
	badgeRadius = 22.0

	svgDataPrefix = "data:image/svg+xml;base64,"
)

// Compositor builds offer marker icons: a framed circular thumbnail above a label box
type Compositor struct {
	token func() string
}

// NewCompositor creates a compositor that tags every icon with a random UUID
func NewCompositor() *Compositor {
	return &Compositor{token: uuid.NewString}
}

// TruncateLabel shortens labels longer than MaxLabelRunes and appends an ellipsis
func TruncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxLabelRunes {
		return label
	}

	return string(runes[:MaxLabelRunes]) + ellipsis
}

// Compose renders the marker icon for one offer.
// When imageDataURI cannot be decoded the image layer is omitted and the
// returned icon is flagged Degraded; composing never fails.
func (c *Compositor) Compose(imageDataURI, label string) service.Icon {
	href, ok := embeddableImage(imageDataURI)

	centerX := svgWidth / 2
	outerR := outerSize / 2
	innerR := innerSize / 2
	labelY := thumbCY + outerR + 2

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`, svgWidth, svgHeight)
	svg.WriteString(`<defs>`)
	svg.WriteString(`<filter id="circleShadow"><feDropShadow dx="0" dy="1" stdDeviation="1.5" flood-opacity="0.20"/></filter>`)
	svg.WriteString(`<filter id="labelShadow"><feDropShadow dx="0" dy="1" stdDeviation="1.5" flood-opacity="0.15"/></filter>`)
	fmt.Fprintf(&svg, `<clipPath id="innerClip"><circle cx="%g" cy="%g" r="%g"/></clipPath>`, centerX, thumbCY, innerR)
	svg.WriteString(`</defs>`)

	fmt.Fprintf(&svg, `<circle cx="%g" cy="%g" r="%g" fill="#ffffff" stroke="%s" stroke-width="2" filter="url(#circleShadow)"/>`,
		centerX, thumbCY, outerR, accentColor)

	if ok {
		fmt.Fprintf(&svg, `<image href="%s" x="%g" y="%g" width="%g" height="%g" clip-path="url(#innerClip)" preserveAspectRatio="xMidYMid slice"/>`,
			escape(href), centerX-innerR, thumbCY-innerR, innerSize, innerSize)
	}

	fmt.Fprintf(&svg, `<rect x="%g" y="%g" width="%g" height="%g" rx="5" ry="5" fill="rgba(255,255,255,0.95)" stroke="%s" stroke-width="1" filter="url(#labelShadow)"/>`,
		(svgWidth-labelWidth)/2, labelY, labelWidth, labelHeight, accentColor)
	fmt.Fprintf(&svg, `<text x="%g" y="%g" font-size="12" font-weight="700" font-family="Arial" fill="%s" text-anchor="middle" alignment-baseline="middle">%s</text>`,
		svgWidth/2, labelY+labelHeight/2+1, accentColor, escape(TruncateLabel(label)))
	fmt.Fprintf(&svg, `<desc>%s</desc>`, escape(c.token()))
	svg.WriteString(`</svg>`)

	return service.Icon{
		URL:    encodeSVG(svg.String()),
		Width:  svgWidth * displayRate,
		Height: svgHeight * displayRate,
		// pin the thumbnail center, not the label, to the coordinate
		AnchorX:  svgWidth * displayRate / 2,
		AnchorY:  thumbCY * displayRate,
		Degraded: !ok,
	}
}

// ClusterBadge renders the circular member-count badge of a cluster
func (c *Compositor) ClusterBadge(count int) service.Icon {
	center := badgeSize / 2

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`, badgeSize, badgeSize)
	fmt.Fprintf(&svg, `<circle cx="%g" cy="%g" r="%g" fill="%s" stroke="#ffffff" stroke-width="3"/>`,
		center, center, badgeRadius, accentColor)
	fmt.Fprintf(&svg, `<text x="%g" y="%g" font-size="16" font-family="Arial" font-weight="700" fill="#ffffff" text-anchor="middle">%d</text>`,
		center, center+5, count)
	svg.WriteString(`</svg>`)

	return service.Icon{
		URL:     encodeSVG(svg.String()),
		Width:   badgeSize,
		Height:  badgeSize,
		AnchorX: center,
		AnchorY: center,
	}
}

// DecodeSVG extracts the markup from an icon URL produced by this package
func DecodeSVG(iconURL string) (string, error) {
	payload, found := strings.CutPrefix(iconURL, svgDataPrefix)
	if !found {
		return "", errors.New("not an svg data uri")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", errors.Wrap(err, "decode svg payload")
	}

	return string(raw), nil
}

func encodeSVG(svg string) string {
	return svgDataPrefix + base64.StdEncoding.EncodeToString([]byte(svg))
}

// embeddableImage validates a data URI and returns it in base64 form
func embeddableImage(dataURI string) (string, bool) {
	mediaType, payload, ok := parseDataURI(dataURI)
	if !ok || len(payload) == 0 || !strings.HasPrefix(mediaType, "image/") {
		return "", false
	}

	if mediaType != "image/svg+xml" {
		if _, _, err := image.DecodeConfig(bytes.NewReader(payload)); err != nil {
			return "", false
		}
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(payload), true
}

func parseDataURI(dataURI string) (mediaType string, payload []byte, ok bool) {
	rest, found := strings.CutPrefix(dataURI, "data:")
	if !found {
		return "", nil, false
	}

	meta, data, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, false
	}

	params := strings.Split(meta, ";")
	mediaType = strings.ToLower(strings.TrimSpace(params[0]))
	isBase64 := false
	for _, param := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(param), "base64") {
			isBase64 = true
		}
	}

	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return "", nil, false
		}

		return mediaType, decoded, true
	}

	unescaped, err := url.PathUnescape(data)
	if err != nil {
		return "", nil, false
	}

	return mediaType, []byte(unescaped), true
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}
