// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and bookmarking movies:
//  1. [SearchView] : Debounced, as-you-type movie search
//  2. [DetailView] : Full movie details with bookmark toggling
//  3. [BookmarksView] : Saved movies with filtering and sorting
//  4. [LoginView] : Sign-in and account-creation form with inline validation
//  5. [ProfileView] : The signed-in user's account summary
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving typed tea.Msg structs.
// Search requests are debounced and carry monotonic sequence numbers so a slow response for an
// old query can never overwrite results for a newer one.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, b, d, s) with contextual help displayed via charmbracelet/bubbles/help.
package ui
