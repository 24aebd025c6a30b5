package report

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Mercado Libre - Ofertas del Día</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      background: #f5f5f5;
      padding: 20px;
    }
    h1 {
      text-align: center;
      color: #333;
      margin-bottom: 10px;
    }
    h2 {
      color: #333;
      margin-bottom: 8px;
    }
    .meta {
      text-align: center;
      color: #666;
      margin-bottom: 20px;
      font-size: 14px;
    }

    /* Featured Section */
    .featured-section {
      max-width: 1400px;
      margin: 0 auto 40px;
      background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
      border-radius: 16px;
      padding: 24px;
      color: white;
    }
    .featured-section h2 {
      color: white;
      font-size: 22px;
    }
    .featured-subtitle {
      color: #aaa;
      font-size: 14px;
      margin-bottom: 20px;
    }
    .featured-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(380px, 1fr));
      gap: 20px;
    }
    .featured-card {
      background: rgba(255,255,255,0.08);
      border-radius: 12px;
      padding: 16px;
      display: grid;
      grid-template-columns: 140px 1fr;
      gap: 16px;
    }
    .featured-image {
      position: relative;
      background: white;
      border-radius: 8px;
      padding: 8px;
    }
    .featured-image img {
      width: 100%;
      height: 120px;
      object-fit: contain;
    }
    .featured-image .discount {
      position: absolute;
      top: -8px;
      right: -8px;
      background: #00a650;
      color: white;
      font-size: 12px;
      font-weight: bold;
      padding: 4px 8px;
      border-radius: 6px;
    }
    .featured-info {
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .featured-title {
      color: white;
      text-decoration: none;
      font-size: 14px;
      line-height: 1.4;
      display: -webkit-box;
      -webkit-line-clamp: 2;
      -webkit-box-orient: vertical;
      overflow: hidden;
    }
    .featured-title:hover {
      text-decoration: underline;
    }
    .featured-price {
      font-size: 24px;
      font-weight: bold;
      color: #00a650;
    }
    .price-history {
      display: flex;
      flex-direction: column;
      gap: 6px;
    }
    .analysis-badge {
      display: inline-block;
      padding: 4px 10px;
      border-radius: 12px;
      font-size: 12px;
      font-weight: 500;
      color: white;
      width: fit-content;
    }
    .sparkline {
      margin: 4px 0;
    }
    .price-stats {
      display: flex;
      gap: 12px;
      font-size: 11px;
      color: #999;
    }
    .price-stats span {
      display: inline-block;
    }
    .mercadotrack-link {
      color: #3483fa;
      text-decoration: none;
      font-size: 12px;
    }
    .mercadotrack-link:hover {
      text-decoration: underline;
    }
    .no-data {
      color: #666;
      font-size: 12px;
      font-style: italic;
    }

    /* Regular Grid */
    .all-offers-title {
      max-width: 1400px;
      margin: 0 auto 16px;
      color: #333;
    }
    .grid {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
      gap: 16px;
      max-width: 1400px;
      margin: 0 auto;
    }
    .card {
      background: white;
      border-radius: 8px;
      padding: 12px;
      box-shadow: 0 1px 3px rgba(0,0,0,0.1);
      display: flex;
      flex-direction: column;
      align-items: center;
      position: relative;
    }
    .card img {
      width: 100%;
      height: 150px;
      object-fit: contain;
      margin-bottom: 10px;
    }
    .card a {
      color: #3483fa;
      text-decoration: none;
      font-size: 13px;
      text-align: center;
      line-height: 1.3;
    }
    .card a:hover {
      text-decoration: underline;
    }
    .discount {
      position: absolute;
      top: 8px;
      right: 8px;
      background: #00a650;
      color: white;
      font-size: 11px;
      font-weight: bold;
      padding: 3px 6px;
      border-radius: 4px;
    }
    .price {
      font-size: 18px;
      font-weight: bold;
      color: #333;
      margin-bottom: 8px;
    }

    @media (max-width: 480px) {
      .featured-grid {
        grid-template-columns: 1fr;
      }
      .featured-card {
        grid-template-columns: 1fr;
      }
    }
  </style>
</head>
<body>
  <h1>Ofertas del Día - Mercado Libre</h1>
  <p class="meta">Actualizado: {{.GeneratedAt.Format "2006-01-02 15:04"}} | {{len .Offers}} ofertas (ordenadas por descuento)</p>
{{- if .Featured}}
  <section class="featured-section">
    <h2>🔍 Top {{len .Featured}} Ofertas - Análisis de Precio</h2>
    <p class="featured-subtitle">Verificamos el historial de precios para confirmar si son ofertas reales</p>
    <div class="featured-grid">
{{- range .Featured}}
      <div class="featured-card">
        <div class="featured-image">
          <span class="discount">{{printf "%.0f" .DiscountPercent}}% OFF</span>
          <img src="{{.Image}}" alt="{{.Name}}">
        </div>
        <div class="featured-info">
          <a href="{{.Link}}" target="_blank" class="featured-title">{{.Name}}</a>
          <div class="featured-price">{{formatPrice .Price}}</div>
          <div class="price-history">
{{- if .Analysis}}
            <div class="analysis-badge" style="background: {{statusColor .Analysis.Status}}">{{.Analysis.Message}}</div>
{{- if .Analysis.Prices}}
            {{sparkline .Analysis.Prices}}
{{- else}}
            <span class="no-data">Sin historial</span>
{{- end}}
{{- if gt .Analysis.MinPrice 0.0}}
            <div class="price-stats">
              <span>Mín: {{formatPrice .Analysis.MinPrice}}</span>
              <span>Prom: {{formatPrice .Analysis.AvgPrice}}</span>
              <span>Máx: {{formatPrice .Analysis.MaxPrice}}</span>
            </div>
{{- end}}
{{- end}}
{{- if .ProductID}}
            <a href="{{trackerLink .ProductID}}" target="_blank" class="mercadotrack-link">Ver historial completo →</a>
{{- end}}
          </div>
        </div>
      </div>
{{- end}}
    </div>
  </section>
{{- end}}
  <h3 class="all-offers-title">Todas las ofertas</h3>
  <div class="grid">
{{- range .Offers}}
    <div class="card">
{{- if gt .DiscountPercent 0.0}}
      <span class="discount">{{printf "%.0f" .DiscountPercent}}% OFF</span>
{{- end}}
      <img src="{{.Image}}" alt="{{.Name}}" loading="lazy">
      <span class="price">{{formatPrice .Price}}</span>
      <a href="{{.Link}}" target="_blank">{{.Name}}</a>
    </div>
{{- end}}
  </div>
</body>
</html>
`
