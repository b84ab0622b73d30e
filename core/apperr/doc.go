// Package apperr defines the error kinds an nbcli invocation can end with.
//
// Every failure that reaches the top of a command is one of:
//   - ErrFileNotFound: an input file could not be opened.
//   - FetchError: NetBox could not be reached or rejected a request.
//   - ErrUserInput: an invalid flag combination, type or action (ErrNotImplemented is a
//     user input error too).
//   - ErrCancelled: the operator interrupted an interactive operation.
//
// cmd.Execute maps them to a message and an exit code with Message and ExitCode.
package apperr
