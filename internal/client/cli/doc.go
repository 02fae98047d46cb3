// Package cli provides the interactive authshell command-line client.
//
// The App restores the saved session, then runs a REPL whose commands
// depend on whether someone is signed in:
//
//   - signed out: login, signup, help, exit
//   - signed in:  home (whoami), logout, help, exit
//
// Login and signup screens validate their fields before calling the
// session manager and place any returned error next to the field it names.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
