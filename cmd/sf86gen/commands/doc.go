// Package commands defines the sf86gen CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - fields      List or look up entries in the PDF field catalog
//   - sectionize  Classify catalog fields into SF-86 sections
//   - map         Resolve a logical path to a PDF field name (or back)
//   - validate    Run schema, branch, and format checks over applicant data
//   - coverage    Compare mapping tables against the field catalog
//   - fill        Fill the SF-86 template PDF from applicant data
//   - export      Read a filled PDF back into an applicant document
//   - draft       Manage saved drafts in the local store
//   - prompt      Fill a section interactively from the terminal
//
// The root command loads environment configuration and builds the shared
// logger before any subcommand runs; flags override the environment.
package commands
