// Sigbench measures key generation, signature and verification costs of
// digital signature schemes over several message sizes.
//
// Usage:
//
//   sigbench [--sizes 64,128,256] [--trials 100] [--schemes dsa,secp256k1]
//   sigbench list
//   sigbench config
package main

import "go.dedis.ch/sigbench/app"

func main() {
	app.Sigbench()
}
