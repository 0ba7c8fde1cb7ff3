// Package gateway resolves the connection parameters handed to the
// browser console: the gateway endpoint URL and the auth token.
//
// # Precedence
//
// Each field resolves independently through the same chain:
//
//  1. Explicit CLI flag (--endpoint, --token)
//  2. Environment variable (GATEWAY_ENDPOINT, GATEWAY_TOKEN)
//  3. Token only: auto-discovered credential file under the home
//     directory (~/.gateway/credentials.json, then
//     ~/.config/gateway/credentials.json), read for the nested
//     gateway.auth.token string
//  4. Endpoint only: the hardcoded local default
//
// Missing or malformed credential files are never an error; the chain
// simply falls through, and a token that no source provides stays empty.
// Resolution runs once at process start and the result is immutable.
package gateway
