package icon

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURI(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 211, G: 123, B: 1, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "short", label: "بيتزا", want: "بيتزا"},
		{name: "exactly ten", label: "0123456789", want: "0123456789"},
		{name: "eleven", label: "0123456789A", want: "0123456789…"},
		{name: "arabic counts runes", label: "عرض خاص جداً اليوم", want: "عرض خاص جد…"},
		{name: "empty", label: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateLabel(tt.label))
		})
	}
}

func TestCompose_EmbedsImageAndLabel(t *testing.T) {
	compositor := NewCompositor()

	icon := compositor.Compose(pngDataURI(t), "Pizza Margherita")

	assert.False(t, icon.Degraded)
	assert.InDelta(t, 90, icon.Width, 1e-9)
	assert.InDelta(t, 85.5, icon.Height, 1e-9)
	assert.InDelta(t, 45, icon.AnchorX, 1e-9)
	assert.InDelta(t, 22.5, icon.AnchorY, 1e-9)

	svg, err := DecodeSVG(icon.URL)
	require.NoError(t, err)
	assert.Contains(t, svg, `<image href="data:image/png;base64,`)
	assert.Contains(t, svg, `clip-path="url(#innerClip)"`)
	assert.Contains(t, svg, "Pizza Marg…")
	assert.Contains(t, svg, `r="22.5"`)
	assert.Contains(t, svg, `r="20"`)
}

func TestCompose_UndecodableImageFallsBackToFrameAndLabel(t *testing.T) {
	compositor := NewCompositor()

	inputs := []string{
		"",
		"not a data uri",
		"data:image/png;base64,!!!",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("garbage")),
		"data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello")),
	}

	for _, input := range inputs {
		icon := compositor.Compose(input, "Café")

		assert.True(t, icon.Degraded, input)
		svg, err := DecodeSVG(icon.URL)
		require.NoError(t, err)
		assert.NotContains(t, svg, "<image")
		assert.Contains(t, svg, "Café")
		assert.Contains(t, svg, "<circle")
	}
}

func TestCompose_AcceptsSVGThumbnails(t *testing.T) {
	thumb := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))

	icon := NewCompositor().Compose(thumb, "x")

	assert.False(t, icon.Degraded)
}

func TestCompose_EscapesLabel(t *testing.T) {
	icon := NewCompositor().Compose("", `<b>&"`)

	svg, err := DecodeSVG(icon.URL)
	require.NoError(t, err)
	assert.Contains(t, svg, "&lt;b&gt;&amp;&#34;")
	assert.NotContains(t, svg, "<b>")
}

func TestCompose_EmbedsUniquenessToken(t *testing.T) {
	compositor := NewCompositor()
	uri := pngDataURI(t)

	first := compositor.Compose(uri, "same")
	second := compositor.Compose(uri, "same")

	assert.NotEqual(t, first.URL, second.URL)

	svg, err := DecodeSVG(first.URL)
	require.NoError(t, err)
	assert.True(t, strings.Contains(svg, "<desc>") && strings.Contains(svg, "</desc>"))
}

func TestCompose_DeterministicWithFixedToken(t *testing.T) {
	compositor := &Compositor{token: func() string { return "fixed" }}
	uri := pngDataURI(t)

	assert.Equal(t, compositor.Compose(uri, "a").URL, compositor.Compose(uri, "a").URL)
}

func TestClusterBadge(t *testing.T) {
	badge := NewCompositor().ClusterBadge(27)

	assert.InDelta(t, 48, badge.Width, 1e-9)
	assert.InDelta(t, 24, badge.AnchorX, 1e-9)
	assert.InDelta(t, 24, badge.AnchorY, 1e-9)

	svg, err := DecodeSVG(badge.URL)
	require.NoError(t, err)
	assert.Contains(t, svg, ">27</text>")
	assert.Contains(t, svg, `fill="#d37b01"`)
	assert.Contains(t, svg, `stroke="#ffffff" stroke-width="3"`)
}

func TestDecodeSVG_RejectsForeignURLs(t *testing.T) {
	_, err := DecodeSVG("data:image/png;base64,AAAA")
	assert.EqualError(t, err, "not an svg data uri")

	_, err = DecodeSVG(svgDataPrefix + "%%%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode svg payload")

	var corrupt base64.CorruptInputError
	assert.ErrorAs(t, err, &corrupt)
}
