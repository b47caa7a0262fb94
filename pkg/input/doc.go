// Package input provides one typed API for reading and writing named values
// regardless of where they live: query strings, request bodies, chi route
// parameters, the process environment or a session.
//
// # Values
//
// Every stored value is one of six kinds, modelled as a sealed union:
// Text, Int, Float, Bool, Array and DateTime. A nil Value means absent. Of
// lifts plain Go values into the union.
//
// # Sources
//
// A Source offers three families of accessors on top of Has, Get and Set:
//
//   - validated getters (GetString, GetInt, ...) return the value only when
//     it already has the requested kind and fail with ErrTypeMismatch
//     otherwise;
//   - coercing getters (GetAsString, GetAsInt, ...) cast the value with the
//     rules documented on AsString, AsInt, AsFloat, AsBool, AsArray and
//     AsDateTime;
//   - typed setters (SetString, SetInt, ...) store a value of a known kind.
//
// Getters accept an optional default returned when the key is absent. With
// no default an absent key yields a *MissingKeyError matching ErrMissingKey.
//
//	q := input.QueryFromRequest(r)
//	page, err := q.GetAsInt("page", 1)
//
// Concrete sources embed *Accessor and plug in a Backend. Env, Query, Body
// and Route live here; the session source lives in pkg/session.
//
// # HTTP
//
// Middleware builds Query, Body and Route per request and stores them in
// the request context:
//
//	r := chi.NewRouter()
//	r.Use(input.Middleware(input.WithLogger(log)))
//	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//	    route, _ := input.RouteFromContext(r.Context())
//	    id, err := route.GetAsInt("id")
//	    ...
//	})
//
// # Persistence
//
// Values marshals to JSON and CBOR through Wire, which keeps the kind of
// every value so an Int never comes back as a Float.
package input
