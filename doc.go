// Package mrepo builds and publishes a third-party module repository: a
// config.json describing tracked modules, a working tree of staged zip
// archives, and a consolidated modules.json index consumed by clients.
//
// # Basic Usage
//
//	ctx, err := mrepo.FromWorkingDir(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	closer, err := logging.Init(ctx.Log())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer closer.Close()
//
//	results := ctx.Update(context.Background(), nil)
//	removed, err := ctx.Upgrade(true)
//
// # Layout
//
// A repository's working directory holds two well-known subdirectories:
//
//	<dir>/json/config.json   configuration (see internal/model.Config)
//	<dir>/json/modules.json  published index, written by Upgrade
//	<dir>/modules/<id>/      staged archives and track.json per module
//
// [Build] loads a configuration from an arbitrary path against a working
// directory; [FromWorkingDir] assumes the conventional layout above.
//
// # Providers
//
// Each configured module declares one of three provider kinds: update-json
// (a pointer document naming the current version and its zip URL),
// zip-url (a zip fetched directly, version read from the packaged
// manifest), or git (a shallow clone packaged into a zip). See
// internal/update for the dispatch and internal/model for the wire shapes.
package mrepo
