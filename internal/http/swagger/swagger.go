package swagger

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/product-catalog/api-contract"
)

const (
	DocsPath = "/docs"
	SpecPath = "/docs/openapi.yml"
)

// Register validates the embedded contract and serves it with Swagger UI on r.
// An invalid contract is reported instead of being served.
func Register(r chi.Router) error {
	if _, err := apicontract.Load(context.Background()); err != nil {
		return fmt.Errorf("load api contract: %w", err)
	}

	r.Get(DocsPath, serveBytes("text/html; charset=utf-8", []byte(strings.ReplaceAll(page, "{{spec}}", SpecPath))))
	r.Get(SpecPath, serveBytes("application/yaml", apicontract.GetSpecBytes()))

	return nil
}

func serveBytes(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(body)
	}
}

const page = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Product Catalog API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({ url: '{{spec}}', dom_id: '#swagger-ui', deepLinking: true });
  };
</script>
</body>
</html>
`
