//go:build ((linux && amd64) || (linux && arm64) || (darwin && amd64) || (darwin && arm64) || (windows && amd64)) && !blst_disabled

package blst

import (
	"fmt"
	"runtime"

	lru "github.com/hashicorp/golang-lru"
	blst "github.com/supranational/blst/bindings/go"
)

// maxKeys is the number of decompressed public keys kept around between
// decodings. Consensus workloads decode the same validator keys over and over,
// so the cache removes the dominant cost of PublicKeyFromBytes.
const maxKeys = 1000000

var pubkeyCache *lru.Cache

func init() {
	// Reserve 1 core for general application work
	maxProcs := runtime.GOMAXPROCS(0) - 1
	if maxProcs <= 0 {
		maxProcs = 1
	}
	blst.SetMaxProcs(maxProcs)
	keysCache, err := lru.New(maxKeys)
	if err != nil {
		panic(fmt.Sprintf("Could not initiate public keys cache: %v", err))
	}
	pubkeyCache = keysCache
}
