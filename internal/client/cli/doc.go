// Package cli provides the interactive medadvisor command-line client.
//
// It wires configuration, the local database, the REST client, the session
// store, and an interactive REPL. Typical flow: restore the cached session,
// then execute user commands.
//
// Key features:
//   - Register / Login / Logout against the advisory backend
//   - Submit a symptom selection and view the predicted diagnosis with
//     medication, diet, workout, and precaution suggestions
//   - Browse prediction history, with a local fallback when offline
//   - Profile management: username and avatar
//
// Protected commands pass through the route guard: while the session state
// is still loading only a neutral indicator is shown, and without a session
// the user is taken through login and then returned to the command they
// asked for.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
