package graph

import (
	"net/http"
	"strings"
)

// graphiqlPage is a minimal GraphiQL UI loaded from a CDN; the gqlgen
// playground is not available without gqlgen, and graph-gophers
// deployments conventionally embed this page instead.
const graphiqlPage = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8"/>
	<title>Blog GraphQL API</title>
	<style>
		body { margin: 0; }
		#graphiql { height: 100vh; }
	</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css"/>
</head>
<body>
	<div id="graphiql">Loading…</div>
	<script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: "{{endpoint}}" });
		ReactDOM.createRoot(document.getElementById("graphiql")).render(
			React.createElement(GraphiQL, { fetcher: fetcher })
		);
	</script>
</body>
</html>`

// PlaygroundHandler serves a GraphiQL page pointed at the given GraphQL
// endpoint path.
func PlaygroundHandler(endpoint string) http.HandlerFunc {
	page := strings.ReplaceAll(graphiqlPage, "{{endpoint}}", endpoint)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}
