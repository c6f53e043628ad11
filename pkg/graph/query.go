package graph

import (
    "github.com/vektah/gqlparser/v2/ast"
    "github.com/vektah/gqlparser/v2/parser"
)

// gatewayURL embeds the API key and the Uniswap v3 subgraph id, matching how
// the gateway expects them.
const gatewayURL = "https://gateway.thegraph.com/api/da162f6f59fe4400bb44cfb2f36d1336/subgraphs/id/5zvR82QoaXYFyDEKLZ9t6v9adgnptxYpKpSbxtgVENFV"

// swapsDocument asks for the swap amounts on four mainnet pools inside a fixed
// one-minute window, newest first. The bounds are exclusive on both sides.
const swapsDocument = `{
  swaps(where:{pool_in:["0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640",
                        "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8",
                        "0xe0554a476a092703abdb3ef35c80e0d76d32939f",
                        "0x7BeA39867e4169DBe237d55C8242a8f2fcDcc387"]
               timestamp_gt:1733080500 timestamp_lt:1733080560 }
        orderBy:timestamp orderDirection:desc )
  {
    amount0
    amount1
  }
}`

// queryRequest is the POST body envelope the gateway expects.
type queryRequest struct {
    Query string `json:"query"`
}

func init() {
    // Catch document typos at startup instead of as gateway errors
    if _, err := parser.ParseQuery(&ast.Source{Input: swapsDocument}); err != nil {
        panic("graph: swaps document does not parse: " + err.Error())
    }
}
