// Package client bootstraps local persistence for the authshell client.
//
// InitDatabase opens the SQLite file and applies the embedded goose
// migrations (RunMigrations). OpenStorage turns a config.Config into the
// storage.Repository the account store and the session manager share, so
// nothing else in the client needs to know which driver is in use.
package client
