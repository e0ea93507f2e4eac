// Package venturebridge provides an embedded Go client for the
// startup/investor matchmaking backend.
//
// The client wires the same store, repositories and services the HTTP server
// runs on, so tooling (seeders, migration scripts, batch jobs) can talk to
// the document store without going through the API:
//
//	client, _ := venturebridge.New(ctx,
//	    venturebridge.WithMongo("mongodb://localhost:27017", "matchmaking"),
//	)
//	defer client.Close(ctx)
//
//	id, _ := client.CreateStartup(ctx, &domain.Startup{Name: "Acme"})
//	matches, _ := client.Match(ctx, &domain.MatchPreference{Industry: []string{"fintech"}})
package venturebridge
