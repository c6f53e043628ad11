package models

// Swap is one swap event row as the subgraph returns it. The gateway encodes
// numerics as strings, signed by direction.
type Swap struct {
    Amount0 string `json:"amount0"`
    Amount1 string `json:"amount1"`
}

// GraphError is one entry of a GraphQL error envelope.
type GraphError struct {
    Message string `json:"message"`
}

// GraphEnvelope is the standard GraphQL response envelope: exactly one of
// Data or Errors is expected to be populated.
type GraphEnvelope struct {
    Data   map[string]interface{} `json:"data"`
    Errors []GraphError           `json:"errors"`
}
