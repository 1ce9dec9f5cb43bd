// Package server hosts the one-shot loopback HTTP server used during OAuth
// sign-in.
//
// The flow: the CLI opens the provider's consent page in a browser, the
// provider redirects back to the loopback address, [OAuthHandler] validates
// the state parameter and exchanges the authorization code, and the result is
// delivered over a channel to the waiting command. The server exists only for
// the duration of one authorization and serves nothing else.
package server
