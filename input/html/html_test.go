package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/mathbox/input/preprocess"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"
)

var spans = preprocess.MathRendererFunc(func(math string) (string, error) {
	return `<span class="math">` + math + `</span>`, nil
})

func TestRenderMathInFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	in := `<p>Let $x$ be <em>real, $y<0$</em>.</p><pre>$raw$</pre><code>$c$</code>`
	var out bytes.Buffer
	err := RenderMathInFragment(strings.NewReader(in), &out, spans, preprocess.Config{})
	require.NoError(t, err)
	assert.Equal(t, `<p>Let <span class="math">x</span> be <em>real, `+
		`<span class="math">y&lt;0</span></em>.</p><pre>$raw$</pre><code>$c$</code>`,
		out.String())
}

func TestRenderMathInDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	doc, err := nethtml.Parse(strings.NewReader(
		`<html><head><title>$t$</title></head><body>\textbf{$a$}</body></html>`))
	require.NoError(t, err)
	require.NoError(t, RenderMathInElement(doc, spans, preprocess.Config{}))
	var out bytes.Buffer
	require.NoError(t, nethtml.Render(&out, doc))
	assert.Contains(t, out.String(), `<title>$t$</title>`)
	assert.Contains(t, out.String(), `<body><b><span class="math">a</span></b></body>`)
}

func TestRenderMathInNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	assert.Error(t, RenderMathInElement(nil, spans, preprocess.Config{}))
}
