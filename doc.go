// Package auth implements the session and route-authorization core of an
// employee-management console: restoring a persisted session at startup,
// exchanging credentials for a bearer token, and deciding per navigation
// whether the current session may reach a route.
//
// Session lifecycle:
//   - SessionManager owns the in-memory State (unauthenticated or
//     authenticated with an identity/token pair, never half of either) and is
//     the sole writer of the CredentialStore and of the outbound transport's
//     default Authorization header.
//   - Restore rebuilds State from persisted credentials, running the
//     TokenValidator and reconciling token claims against the cached identity
//     before trusting either.
//
// Authorization:
//   - RouteRequirement declares the access policy of a navigable path and
//     Gate.Decide turns a requirement plus the current State into an allow or
//     redirect decision. The admin rule is checked first so a signed-in
//     non-admin lands on the authenticated fallback, not the login page.
//
// Token validation:
//   - LocalValidator performs the optimistic structural/expiry check a client
//     can do without keys. TokenService (HS256) and provider/jwks (RS256 via
//     JWKS) cover deployments that can verify signatures.
package auth
