// Package filesystem implements the file-based collaborators of the showcase:
// a line-by-line text converter, two copy strategies (line-buffered stream and
// bulk byte transfer) and a timing comparison between them.
//
// A missing source file is reported as *errs.ObjectNotFoundError with the param
// name "file"; every other I/O failure is wrapped with the operation and path.
package filesystem
