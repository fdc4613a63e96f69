package printing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromedpRenderer_Defaults(t *testing.T) {
	r := NewChromedpRenderer(ChromedpConfig{RemoteURL: "ws://127.0.0.1:9222/devtools/browser/x"})
	defer r.Close()

	assert.Equal(t, defaultChromeTimeout, r.config.DefaultTimeout)
	assert.Equal(t, defaultScale, r.config.Scale)
	assert.NotNil(t, r.logger)
}

func TestBuildPrintParams(t *testing.T) {
	r := &ChromedpRenderer{config: ChromedpConfig{Scale: 1.0}}

	t.Run("A4 portrait", func(t *testing.T) {
		p := r.buildPrintParams(&RenderRequest{PaperSize: PaperSizeA4, Margins: DefaultMargins()})
		assert.InDelta(t, mmToInches(210), p.paperWidth, 0.01)
		assert.InDelta(t, mmToInches(297), p.paperHeight, 0.01)
		assert.InDelta(t, mmToInches(10), p.marginLeft, 0.001)
		assert.False(t, p.landscape)
		assert.False(t, p.displayHeaderFooter)
	})

	t.Run("A5 landscape", func(t *testing.T) {
		p := r.buildPrintParams(&RenderRequest{PaperSize: PaperSizeA5, Orientation: OrientationLandscape})
		assert.InDelta(t, mmToInches(148), p.paperWidth, 0.01)
		assert.True(t, p.landscape)
	})

	t.Run("footer forces a bottom margin", func(t *testing.T) {
		p := r.buildPrintParams(&RenderRequest{
			PaperSize:  PaperSizeA4,
			FooterHTML: "<span class='pageNumber'></span>",
		})
		assert.True(t, p.displayHeaderFooter)
		assert.InDelta(t, mmToInches(minHeaderFooterMarginMM), p.marginBottom, 0.001)
		assert.Zero(t, p.marginTop)
	})
}

func TestBuildCompleteHTML(t *testing.T) {
	t.Run("wraps fragments", func(t *testing.T) {
		out := buildCompleteHTML(&RenderRequest{HTML: "<p>hi</p>", Title: "A & B"})
		assert.Contains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, "<title>A &amp; B</title>")
		assert.Contains(t, out, "<body><p>hi</p></body>")
	})

	t.Run("keeps complete documents", func(t *testing.T) {
		in := "<!DOCTYPE html><html><body>x</body></html>"
		assert.Equal(t, in, buildCompleteHTML(&RenderRequest{HTML: in}))
	})
}

func TestChromedpRenderer_RejectsBadRequests(t *testing.T) {
	r := NewChromedpRenderer(ChromedpConfig{RemoteURL: "ws://127.0.0.1:1/devtools/browser/none", DefaultTimeout: time.Second})
	defer r.Close()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *RenderRequest
		code string
	}{
		{"nil request", nil, ErrCodeInvalidHTML},
		{"blank html", &RenderRequest{HTML: "  "}, ErrCodeInvalidHTML},
		{"unknown paper", &RenderRequest{HTML: "<p>x</p>", PaperSize: "B5"}, ErrCodeInvalidPaperSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(ctx, tt.req)
			var renderErr *RenderError
			require.True(t, errors.As(err, &renderErr))
			assert.Equal(t, tt.code, renderErr.Code)
		})
	}
}

func TestEstimatePageCount(t *testing.T) {
	pdf := []byte("<< /Type /Pages /Count 2 >> << /Type /Page >> << /Type /Page >>")
	assert.Equal(t, 2, estimatePageCount(pdf))
	assert.Equal(t, 1, estimatePageCount([]byte("garbage")))
}

func TestDisabledRenderer(t *testing.T) {
	_, err := DisabledRenderer{}.Render(context.Background(), &RenderRequest{HTML: "x"})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRendererDisabled, renderErr.Code)
	assert.NoError(t, DisabledRenderer{}.Close())
}
