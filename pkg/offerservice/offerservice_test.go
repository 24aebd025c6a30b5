// +build !integration

package offerservice

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/config"
)

const listingPage = `<html><script>
window.__PRELOADED_STATE__ = {"data":{"items":[
{"card":{
  "metadata":{"url":"www.mercadolibre.com.ar/p/MLA11111111"},
  "pictures":{"pictures":[{"id":"111-MLA"}]},
  "components":[
    {"type":"title","title":{"text":"Notebook Lenovo IdeaPad 3"}},
    {"type":"price","price":{"discount":{"value":29},"current_price":{"value":849999}}}
  ]}},
{"card":{
  "metadata":{"url":"www.mercadolibre.com.ar/p/MLA22222222"},
  "pictures":{"pictures":[{"id":"222-MLA"}]},
  "components":[
    {"type":"title","title":{"text":"Auriculares JBL Tune 510BT"}},
    {"type":"price","price":{"discount":{"value":15},"current_price":{"value":74999}}}
  ]}}
]}};
</script></html>`

const trackingPage = `<script>{\"product\":{\"snapshots\":[
{\"date\":\"2024-01-01\",\"price\":1300000},
{\"date\":\"2024-01-02\",\"price\":1250000},
{\"date\":\"2024-01-03\",\"price\":1200000}
]}}</script>`

type ServiceSuite struct {
	suite.Suite

	market  *httptest.Server
	tracker *httptest.Server
	outDir  string
}

func (s *ServiceSuite) SetupTest() {
	s.market = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage)
	}))
	s.tracker = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/MLA") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, trackingPage)
	}))
	s.outDir = s.T().TempDir()
}

func (s *ServiceSuite) TearDownTest() {
	s.market.Close()
	s.tracker.Close()
}

func (s *ServiceSuite) configFile(body string) *config.File {
	path := filepath.Join(s.outDir, "config.yaml")
	err := os.WriteFile(path, []byte(body), 0644)
	s.Require().NoError(err)

	cfg, err := config.New(path)
	s.Require().NoError(err)
	return cfg
}

func (s *ServiceSuite) baseConfig() *config.File {
	return s.configFile(fmt.Sprintf(`marketplace:
  base_url: %s
  sources:
    - name: ofertas
      pages: 1
tracker:
  base_url: %s
report:
  output_path: %s
  csv_path: %s
  top_n: 2
`,
		s.market.URL,
		s.tracker.URL,
		filepath.Join(s.outDir, "ofertas.html"),
		filepath.Join(s.outDir, "ofertas.csv"),
	))
}

func (s *ServiceSuite) TestPipeline() {
	cfg := s.baseConfig()

	p, err := New(cfg, false)
	s.Require().NoError(err)

	err = p.Run()
	s.Require().NoError(err)

	page, err := os.ReadFile(filepath.Join(s.outDir, "ofertas.html"))
	s.Require().NoError(err)

	html := string(page)
	s.Contains(html, "Notebook Lenovo IdeaPad 3")
	s.Contains(html, "Auriculares JBL Tune 510BT")
	// both featured offers got a history verdict
	s.Contains(html, "analysis-badge")
	s.Contains(html, "svg")

	// the ranking puts the bigger discount first
	s.Less(
		strings.Index(html, "Notebook Lenovo"),
		strings.Index(html, "Auriculares JBL"),
	)

	csv, err := os.ReadFile(filepath.Join(s.outDir, "ofertas.csv"))
	s.Require().NoError(err)
	s.Len(strings.Split(strings.TrimSpace(string(csv)), "\n"), 3)

	s.Empty(p.errs.Errors)
}

func (s *ServiceSuite) TestPipelineTrackerDown() {
	cfg := s.baseConfig()
	s.tracker.Close()

	p, err := New(cfg, false)
	s.Require().NoError(err)

	// a dead tracker degrades featured offers to unknown verdicts
	err = p.Run()
	s.Require().NoError(err)

	page, err := os.ReadFile(filepath.Join(s.outDir, "ofertas.html"))
	s.Require().NoError(err)
	s.Contains(string(page), "Sin historial")
}

func (s *ServiceSuite) TestPipelineMarketDown() {
	cfg := s.baseConfig()
	s.market.Close()

	p, err := New(cfg, false)
	s.Require().NoError(err)

	// no offers at all is the one fatal outcome
	err = p.Run()
	s.Error(err)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func TestNewRequiresSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte("report:\n  top_n: 1\n"), 0644)
	assert.NoError(t, err)

	cfg, err := config.New(path)
	assert.NoError(t, err)

	_, err = New(cfg, false)
	assert.Error(t, err)
}
