// Package urls holds the documentation links printed in troubleshooting
// hints, so they can be updated in one place.
//
//	fmt.Printf("See: %s\n", urls.PublicKey)
package urls
