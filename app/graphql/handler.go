package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/nikkei/pkg/errors"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
	"github.com/shashiranjanraj/nikkei/pkg/metrics"
	"github.com/shashiranjanraj/nikkei/pkg/response"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL documents posted to the endpoint. Execution
// errors ride inside the 200 response body, Apollo style; only an
// unreadable request gets an HTTP error status.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "malformed request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		for _, gqlErr := range result.Errors {
			code := string(errors.CodeInternal)
			if c, ok := gqlErr.Extensions["code"].(string); ok {
				code = c
			}
			metrics.GraphQLErrors.WithLabelValues(code).Inc()
			logger.WithCtx(r.Context()).Warn("graphql operation error",
				"operation", req.OperationName, "code", code, "error", gqlErr.Message)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithCtx(r.Context()).Error("encode graphql response", "error", err)
		}
	}
}
