package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/offer"
	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
)

func sampleOffers() []offer.Offer {
	return []offer.Offer{
		{
			Name:            "Notebook Lenovo IdeaPad 3",
			Link:            "https://www.mercadolibre.com.ar/p/MLA11111111",
			Image:           "https://http2.mlstatic.com/D_111-O.jpg",
			Price:           849999,
			OriginalPrice:   1199999,
			DiscountPercent: 29,
			ProductID:       "MLA11111111",
		},
		{
			Name:            "Auriculares JBL Tune 510BT",
			Link:            "https://www.mercadolibre.com.ar/p/MLA22222222",
			Image:           "https://http2.mlstatic.com/D_222-O.jpg",
			Price:           74999,
			DiscountPercent: 15,
			ProductID:       "MLA22222222",
		},
		{
			Name:  "Pava eléctrica Atma",
			Link:  "https://www.mercadolibre.com.ar/p/MLA33333333",
			Image: "https://http2.mlstatic.com/D_333-O.jpg",
			Price: 25999,
		},
	}
}

func renderDoc(t *testing.T, r *Report) *goquery.Document {
	t.Helper()

	page, err := r.HTML()
	assert.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	assert.NoError(t, err)

	return doc
}

func TestReportRendersAllOffers(t *testing.T) {
	offers := sampleOffers()
	doc := renderDoc(t, New(offers, nil, ""))

	assert.Equal(t, len(offers), doc.Find(".grid .card").Length())

	// no analyzed offers means no featured section at all
	assert.Zero(t, doc.Find(".featured-section").Length())

	meta := doc.Find(".meta").Text()
	assert.Contains(t, meta, "3 ofertas")
}

func TestReportFeaturedSection(t *testing.T) {
	offers := sampleOffers()
	featured := offers[:1]
	featured[0].Analysis = &pricehistory.Analysis{
		Status:   pricehistory.StatusExcellent,
		Message:  "🔥 Precio mínimo histórico",
		MinPrice: 849999,
		MaxPrice: 1300000,
		AvgPrice: 1100000,
		Prices:   []float64{1300000, 1100000, 849999},
	}

	doc := renderDoc(t, New(offers, featured, ""))

	assert.Equal(t, 1, doc.Find(".featured-card").Length())
	assert.Contains(t, doc.Find(".analysis-badge").Text(), "Precio mínimo histórico")
	assert.Equal(t, 1, doc.Find(".featured-card svg.sparkline").Length())
	assert.Contains(t, doc.Find(".price-stats").Text(), "$849.999")

	href, _ := doc.Find(".mercadotrack-link").Attr("href")
	assert.Equal(t, "https://mercadotrack.com/MLA/trackings/MLA11111111", href)
}

func TestReportUnknownAnalysis(t *testing.T) {
	offers := sampleOffers()
	featured := offers[:1]
	featured[0].Analysis = pricehistory.Unknown("")

	doc := renderDoc(t, New(offers, featured, ""))

	// unknown verdicts carry no stats and no sparkline
	assert.Zero(t, doc.Find(".price-stats").Length())
	assert.Zero(t, doc.Find(".featured-card svg").Length())
	assert.Contains(t, doc.Find(".no-data").Text(), "Sin historial")
}

func TestReportDiscountBadges(t *testing.T) {
	doc := renderDoc(t, New(sampleOffers(), nil, ""))

	// the zero-discount offer renders no badge
	assert.Equal(t, 2, doc.Find(".grid .discount").Length())
	assert.Contains(t, doc.Find(".grid .discount").First().Text(), "29% OFF")
}

func TestSparkline(t *testing.T) {
	svg := string(Sparkline([]float64{100, 90, 95, 80}))

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `stroke="#3483fa"`)
	assert.Contains(t, svg, `fill="#00a650"`)
	// path starts at x=0 and the end dot sits on the right edge
	assert.Contains(t, svg, `d="M0.0,`)
	assert.Contains(t, svg, `cx="200"`)
}

func TestSparklineTooFewPoints(t *testing.T) {
	assert.Empty(t, Sparkline(nil))
	assert.Empty(t, Sparkline([]float64{100}))
}

func TestSparklineFlatSeries(t *testing.T) {
	// a constant series must not divide by zero
	svg := string(Sparkline([]float64{500, 500, 500}))
	assert.Contains(t, svg, "<svg")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$1.234.567", formatPrice(1234567.89))
	assert.Equal(t, "$999", formatPrice(999))
	assert.Equal(t, "$0", formatPrice(0))
	assert.Equal(t, "$74.999", formatPrice(74999))
}
